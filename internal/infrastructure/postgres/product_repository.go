package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.name, p.sku,
	COALESCE(p.category_id::text, '') AS category_id, COALESCE(p.supplier_id::text, '') AS supplier_id,
	COALESCE(p.description, '') AS description, p.unit_price, p.quantity_in_stock, p.reorder_level,
	COALESCE(p.image_url, '') AS image_url, p.created_at, p.updated_at`

const productViewSelect = `SELECT ` + productColumns + `,
	COALESCE(c.name, '') AS category_name, COALESCE(s.name, '') AS supplier_name
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. SKU repetido → domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, name, sku, category_id, supplier_id, description, unit_price,
			quantity_in_stock, reorder_level, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Name, p.SKU, nullIfEmpty(p.CategoryID), nullIfEmpty(p.SupplierID), p.Description, p.UnitPrice,
		p.QuantityInStock, p.ReorderLevel, p.ImageURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isFKViolation(err):
			return domain.ErrReferenced
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.ProductView, error) {
	p, err := selectOne[entity.ProductView](ctx, r.q, productViewSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.ProductView, error) {
	p, err := selectOne[entity.ProductView](ctx, r.q, productViewSelect+` WHERE p.sku = $1`, sku)
	if err != nil {
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// List productos por nombre con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProductView, error) {
	list, err := selectAll[entity.ProductView](ctx, r.q,
		productViewSelect+` ORDER BY p.name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Search busca keyword en nombre, SKU o descripción.
func (r *ProductRepo) Search(ctx context.Context, keyword string) ([]*entity.ProductView, error) {
	list, err := selectAll[entity.ProductView](ctx, r.q, productViewSelect+`
		WHERE p.name ILIKE $1 OR p.sku ILIKE $1 OR p.description ILIKE $1
		ORDER BY p.name`, likePattern(keyword))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return list, nil
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.ProductView, error) {
	list, err := selectAll[entity.ProductView](ctx, r.q,
		productViewSelect+` WHERE p.category_id = $1 ORDER BY p.name`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return list, nil
}

// ListLowStock mismo criterio y orden que inventory.LowStock.
func (r *ProductRepo) ListLowStock(ctx context.Context) ([]*entity.ProductView, error) {
	list, err := selectAll[entity.ProductView](ctx, r.q, productViewSelect+`
		WHERE p.quantity_in_stock <= p.reorder_level
		ORDER BY p.quantity_in_stock ASC, p.name`)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	return list, nil
}

// Update corrección completa del registro, incluida la cantidad en stock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, sku = $3, category_id = $4, supplier_id = $5, description = $6,
			unit_price = $7, quantity_in_stock = $8, reorder_level = $9, image_url = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, p.Name, p.SKU, nullIfEmpty(p.CategoryID), nullIfEmpty(p.SupplierID), p.Description,
		p.UnitPrice, p.QuantityInStock, p.ReorderLevel, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isFKViolation(err):
			return domain.ErrReferenced
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete falla con domain.ErrReferenced si el producto tiene movimientos.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LockForUpdate SELECT ... FOR UPDATE; solo tiene efecto dentro de una tx.
func (r *ProductRepo) LockForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	p, err := selectOne[entity.Product](ctx, r.q,
		`SELECT `+productColumns+` FROM products p WHERE p.id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, fmt.Errorf("lock product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) SetQuantity(ctx context.Context, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity_in_stock = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("set product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// TotalValue mismo cálculo que inventory.TotalValue, resuelto en la base.
func (r *ProductRepo) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(unit_price * quantity_in_stock), 0) FROM products`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("products total value: %w", err)
	}
	return total, nil
}
