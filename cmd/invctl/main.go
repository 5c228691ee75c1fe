// invctl tareas de administración sobre la base de datos de Inventario-stock.
//
// Uso:
//
//	invctl reset-password <username>
//	invctl create-user <username> --full-name "..." [--role admin|staff] < contraseña
//	invctl import-products [--encoding latin1] [--delimiter ';'] productos.csv
//	invctl next-order-number
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/cli"
	"github.com/jhoicas/Inventario-stock/internal/domain/order"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
	"github.com/jhoicas/Inventario-stock/pkg/password"
)

func main() {
	root := cli.NewRootCommand(bootstrap)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func bootstrap(ctx context.Context) (*cli.Deps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	log.Debug().Str("db", cfg.DB.DBName).Msg("conectado")

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, password.NewHasher(cfg.Security.BcryptCost), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	deps := &cli.Deps{
		Auth:     authUC,
		Accounts: authUC,
		Products: usecase.NewProductUseCase(postgres.NewProductRepository(pool), categoryRepo, supplierRepo),
		Orders: usecase.NewOrderUseCase(
			postgres.NewOrderRepository(pool), postgres.NewTxRunner(pool), supplierRepo,
			nil, nil, order.ParseMode(cfg.Orders.NumberingMode),
		),
	}
	return deps, pool.Close, nil
}
