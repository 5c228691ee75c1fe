package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

func newCreateUserCommand(boot Bootstrap) *cobra.Command {
	var in dto.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "create-user <username>",
		Short: "Crea una cuenta con rol (admin por defecto)",
		Long: `Crea una cuenta con el rol indicado. Es la forma de dar de alta el primer
administrador: el registro público de la API siempre crea cuentas staff.
La contraseña se lee de la primera línea de la entrada estándar.`,
		Example: `  echo 'Secreto123' | invctl create-user ana_admin --full-name "Ana Pérez"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && pwd == "" {
				return errors.New("create-user: falta la contraseña en la entrada estándar")
			}
			in.Username = args[0]
			in.Password = strings.TrimRight(pwd, "\r\n")
			return withDeps(cmd, boot, func(ctx context.Context, deps *Deps) error {
				u, err := deps.Accounts.CreateUser(ctx, in)
				if err != nil {
					return fmt.Errorf("create-user %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "usuario %s creado (rol %s, id %s)\n", u.Username, u.Role, u.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.FullName, "full-name", "", "nombre completo (requerido)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email de contacto")
	cmd.Flags().StringVar(&in.Role, "role", entity.RoleAdmin, "rol: admin | staff")
	return cmd
}
