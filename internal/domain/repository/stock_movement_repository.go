package repository

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos (solo inserción).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	List(ctx context.Context, limit, offset int) ([]*entity.StockMovementView, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovementView, error)
}
