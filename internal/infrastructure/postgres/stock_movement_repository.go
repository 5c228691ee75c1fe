package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementViewSelect = `SELECT m.id, m.product_id::text AS product_id, m.movement_type, m.quantity,
	COALESCE(m.reference_number, '') AS reference_number, COALESCE(m.notes, '') AS notes,
	COALESCE(m.user_id::text, '') AS user_id, m.created_at,
	COALESCE(p.name, '') AS product_name, COALESCE(p.sku, '') AS product_sku,
	COALESCE(NULLIF(u.full_name, ''), u.username, '') AS user_name
	FROM stock_movements m
	LEFT JOIN products p ON p.id = m.product_id
	LEFT JOIN users u ON u.id = m.user_id`

// StockMovementRepo implementación del puerto StockMovementRepository (solo inserción y lectura).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity, reference_number, notes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.ProductID, m.MovementType, m.Quantity, m.ReferenceNumber, m.Notes, nullIfEmpty(m.UserID), m.CreatedAt,
	)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockMovementView, error) {
	list, err := selectAll[entity.StockMovementView](ctx, r.q,
		movementViewSelect+` ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	return list, nil
}

func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovementView, error) {
	list, err := selectAll[entity.StockMovementView](ctx, r.q,
		movementViewSelect+` WHERE m.product_id = $1 ORDER BY m.created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements by product: %w", err)
	}
	return list, nil
}
