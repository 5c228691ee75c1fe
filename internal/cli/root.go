// Package cli comandos de administración (invctl) sobre los mismos casos de uso de la API.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
)

// PasswordResetter genera una contraseña temporal para una cuenta.
type PasswordResetter interface {
	ResetPasswordByUsername(ctx context.Context, username string) (string, error)
}

// AccountCreator da de alta cuentas con rol explícito.
type AccountCreator interface {
	CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error)
}

// ProductCreator da de alta productos.
type ProductCreator interface {
	Create(ctx context.Context, in dto.ProductRequest) (string, error)
}

// OrderNumberer consulta el próximo número de orden.
type OrderNumberer interface {
	NextNumber(ctx context.Context) (string, error)
}

// Deps casos de uso que necesitan los comandos.
type Deps struct {
	Auth     PasswordResetter
	Accounts AccountCreator
	Products ProductCreator
	Orders   OrderNumberer
}

// Bootstrap arma las dependencias (config, pool, repos) y devuelve la función de cierre.
type Bootstrap func(ctx context.Context) (*Deps, func(), error)

// NewRootCommand construye invctl. Las dependencias se crean solo al ejecutar un subcomando.
func NewRootCommand(boot Bootstrap) *cobra.Command {
	root := &cobra.Command{
		Use:           "invctl",
		Short:         "Administración de Inventario-stock",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newResetPasswordCommand(boot),
		newCreateUserCommand(boot),
		newImportProductsCommand(boot),
		newNextOrderNumberCommand(boot),
	)
	return root
}

// withDeps ejecuta fn con las dependencias y las libera al terminar.
func withDeps(cmd *cobra.Command, boot Bootstrap, fn func(ctx context.Context, deps *Deps) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	deps, closeFn, err := boot(ctx)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn()
	}
	return fn(ctx, deps)
}
