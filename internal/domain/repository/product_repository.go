package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven ProductView (con nombres por JOIN); las escrituras solo aceptan Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.ProductView, error)
	GetBySKU(ctx context.Context, sku string) (*entity.ProductView, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ProductView, error)
	Search(ctx context.Context, keyword string) ([]*entity.ProductView, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.ProductView, error)
	// ListLowStock productos con quantity_in_stock <= reorder_level ordenados por cantidad ascendente.
	ListLowStock(ctx context.Context) ([]*entity.ProductView, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// LockForUpdate lee el producto bloqueando la fila hasta el fin de la transacción.
	LockForUpdate(ctx context.Context, id string) (*entity.Product, error)
	SetQuantity(ctx context.Context, id string, quantity int) error

	Count(ctx context.Context) (int, error)
	// TotalValue SUM(unit_price * quantity_in_stock) sobre todos los productos.
	TotalValue(ctx context.Context) (decimal.Decimal, error)
}
