package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de compra (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.OrderView, error)
	GetByNumber(ctx context.Context, orderNumber string) (*entity.OrderView, error)
	List(ctx context.Context, limit, offset int) ([]*entity.OrderView, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.OrderView, error)
	// Update corrección completa del registro (proveedor, fechas, monto). No toca el estado.
	Update(ctx context.Context, order *entity.Order) error
	// TransitionStatus aplica el cambio de estado en un único UPDATE condicionado a que el
	// estado actual esté en from. Devuelve false si ninguna fila cumplió la condición.
	TransitionStatus(ctx context.Context, id string, from []string, to string) (bool, error)
	Delete(ctx context.Context, id string) error

	// LockNumbering serializa la emisión de números hasta el fin de la transacción.
	LockNumbering(ctx context.Context) error
	// LastOrderNumber último número emitido (por fecha de creación). prefix filtra por
	// prefijo (ej. "PO-2025-"); vacío = cualquiera. "" si no hay órdenes.
	LastOrderNumber(ctx context.Context, prefix string) (string, error)

	Count(ctx context.Context) (int, error)
	// TotalReceivedValue SUM(total_amount) de las órdenes en estado received.
	TotalReceivedValue(ctx context.Context) (decimal.Decimal, error)
}
