package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción con un repositorio de órdenes atado a ella.
// Garantiza que leer el último número e insertar el siguiente sea atómico.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// MovementTxRunner ejecuta fn dentro de una transacción: el movimiento y el nuevo stock
// del producto se confirman juntos o no se confirman.
type MovementTxRunner interface {
	RunMovement(ctx context.Context, fn func(
		movements repository.StockMovementRepository,
		products repository.ProductRepository,
	) error) error
}

// OrderPDFRenderer genera la representación imprimible de una orden de compra.
type OrderPDFRenderer interface {
	RenderOrder(ctx context.Context, order *entity.OrderView) ([]byte, error)
}

// OrderXMLExporter serializa una orden a XML y devuelve el digest SHA-256 de su forma canónica.
type OrderXMLExporter interface {
	ExportOrder(ctx context.Context, order *entity.OrderView) (doc []byte, digest string, err error)
}
