package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, COALESCE(contact_person, '') AS contact_person, COALESCE(email, '') AS email,
	COALESCE(phone, '') AS phone, COALESCE(address, '') AS address, created_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO suppliers (id, name, contact_person, email, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := selectOne[entity.Supplier](ctx, r.q, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	list, err := selectAll[entity.Supplier](ctx, r.q, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}

// Search busca por nombre o persona de contacto (sin distinguir mayúsculas).
func (r *SupplierRepo) Search(ctx context.Context, keyword string) ([]*entity.Supplier, error) {
	list, err := selectAll[entity.Supplier](ctx, r.q, `SELECT `+supplierColumns+`
		FROM suppliers WHERE name ILIKE $1 OR contact_person ILIKE $1 ORDER BY name`, likePattern(keyword))
	if err != nil {
		return nil, fmt.Errorf("search suppliers: %w", err)
	}
	return list, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE suppliers SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6
		WHERE id = $1`,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete falla con domain.ErrReferenced si productos u órdenes apuntan al proveedor.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) CountProducts(ctx context.Context, supplierID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE supplier_id = $1`, supplierID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count supplier products: %w", err)
	}
	return n, nil
}
