package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// orderNumberingLockKey clave de pg_advisory_xact_lock para la emisión de números de orden.
const orderNumberingLockKey int64 = 0x504f4e554d // "PONUM"

const orderViewSelect = `SELECT o.id, o.order_number, COALESCE(o.supplier_id::text, '') AS supplier_id,
	o.order_date, o.expected_delivery_date, o.status, o.total_amount,
	COALESCE(o.user_id::text, '') AS user_id, o.created_at,
	COALESCE(s.name, '') AS supplier_name,
	COALESCE(NULLIF(u.full_name, ''), u.username, '') AS user_name
	FROM orders o
	LEFT JOIN suppliers s ON s.id = o.supplier_id
	LEFT JOIN users u ON u.id = o.user_id`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden. Número repetido → domain.ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, order_number, supplier_id, order_date, expected_delivery_date, status,
			total_amount, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.OrderNumber, nullIfEmpty(o.SupplierID), o.OrderDate, o.ExpectedDeliveryDate, o.Status,
		o.TotalAmount, nullIfEmpty(o.UserID), o.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isFKViolation(err):
			return domain.ErrReferenced
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.OrderView, error) {
	o, err := selectOne[entity.OrderView](ctx, r.q, orderViewSelect+` WHERE o.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*entity.OrderView, error) {
	o, err := selectOne[entity.OrderView](ctx, r.q, orderViewSelect+` WHERE o.order_number = $1`, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("get order by number: %w", err)
	}
	return o, nil
}

// List órdenes de la más reciente a la más antigua.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.OrderView, error) {
	list, err := selectAll[entity.OrderView](ctx, r.q,
		orderViewSelect+` ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

func (r *OrderRepo) ListByStatus(ctx context.Context, status string) ([]*entity.OrderView, error) {
	list, err := selectAll[entity.OrderView](ctx, r.q,
		orderViewSelect+` WHERE o.status = $1 ORDER BY o.created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return list, nil
}

func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE orders SET supplier_id = $2, order_date = $3, expected_delivery_date = $4, total_amount = $5
		WHERE id = $1`,
		o.ID, nullIfEmpty(o.SupplierID), o.OrderDate, o.ExpectedDeliveryDate, o.TotalAmount,
	)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TransitionStatus UPDATE condicional: dos solicitudes concurrentes sobre la misma orden
// pendiente no pueden ganar ambas.
func (r *OrderRepo) TransitionStatus(ctx context.Context, id string, from []string, to string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1 AND status = ANY($3)`, id, to, from)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LockNumbering toma el advisory lock de numeración; se libera en Commit/Rollback.
func (r *OrderRepo) LockNumbering(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, orderNumberingLockKey); err != nil {
		return fmt.Errorf("lock order numbering: %w", err)
	}
	return nil
}

func (r *OrderRepo) LastOrderNumber(ctx context.Context, prefix string) (string, error) {
	var last string
	rows, err := r.q.Query(ctx, `
		SELECT order_number FROM orders
		WHERE order_number LIKE $1
		ORDER BY created_at DESC, length(order_number) DESC, order_number DESC
		LIMIT 1`, prefix+"%")
	if err != nil {
		return "", fmt.Errorf("last order number: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&last); err != nil {
			return "", fmt.Errorf("scan order number: %w", err)
		}
	}
	return last, rows.Err()
}

func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *OrderRepo) TotalReceivedValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1`, entity.OrderStatusReceived).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("orders received value: %w", err)
	}
	return total, nil
}
