package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Un solo goroutine por test.

var (
	_ repository.CategoryRepository      = (*fakeCategoryRepo)(nil)
	_ repository.SupplierRepository      = (*fakeSupplierRepo)(nil)
	_ repository.ProductRepository       = (*fakeProductRepo)(nil)
	_ repository.OrderRepository         = (*fakeOrderRepo)(nil)
	_ repository.StockMovementRepository = (*fakeMovementRepo)(nil)
)

type fakeCategoryRepo struct {
	items    map[string]*entity.Category
	products map[string]int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}, products: map[string]int{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.items {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if err := uuidColumn(id); err != nil {
		return nil, err
	}
	if c, ok := r.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if err := uuidColumn(c.ID); err != nil {
		return err
	}
	existing, ok := r.items[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name, existing.Description = c.Name, c.Description
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if err := uuidColumn(id); err != nil {
		return err
	}
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCategoryRepo) CountProducts(_ context.Context, id string) (int, error) {
	return r.products[id], nil
}

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{items: map[string]*entity.Supplier{}}
	for _, s := range suppliers {
		r.items[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	if err := uuidColumn(id); err != nil {
		return nil, err
	}
	if s, ok := r.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Search(_ context.Context, keyword string) ([]*entity.Supplier, error) {
	kw := strings.ToLower(keyword)
	var out []*entity.Supplier
	for _, s := range r.items {
		if strings.Contains(strings.ToLower(s.Name), kw) || strings.Contains(strings.ToLower(s.ContactPerson), kw) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	if err := uuidColumn(s.ID); err != nil {
		return err
	}
	if _, ok := r.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	if err := uuidColumn(id); err != nil {
		return err
	}
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeSupplierRepo) CountProducts(context.Context, string) (int, error) { return 0, nil }

type fakeProductRepo struct {
	items map[string]*entity.Product
	order []string
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{items: map[string]*entity.Product{}}
	for i := range products {
		p := products[i]
		r.items[p.ID] = &p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakeProductRepo) views(filter func(*entity.Product) bool) []*entity.ProductView {
	var out []*entity.ProductView
	for _, id := range r.order {
		p, ok := r.items[id]
		if ok && filter(p) {
			out = append(out, &entity.ProductView{Product: *p})
		}
	}
	return out
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.items {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.items[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.ProductView, error) {
	if err := uuidColumn(id); err != nil {
		return nil, err
	}
	if p, ok := r.items[id]; ok {
		return &entity.ProductView{Product: *p}, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.ProductView, error) {
	list := r.views(func(p *entity.Product) bool { return p.SKU == sku })
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.ProductView, error) {
	list := r.views(func(*entity.Product) bool { return true })
	if offset >= len(list) {
		return []*entity.ProductView{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (r *fakeProductRepo) Search(_ context.Context, keyword string) ([]*entity.ProductView, error) {
	kw := strings.ToLower(keyword)
	return r.views(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), kw) ||
			strings.Contains(strings.ToLower(p.SKU), kw) ||
			strings.Contains(strings.ToLower(p.Description), kw)
	}), nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.ProductView, error) {
	if err := uuidColumn(categoryID); err != nil {
		return nil, err
	}
	return r.views(func(p *entity.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *fakeProductRepo) ListLowStock(_ context.Context) ([]*entity.ProductView, error) {
	var snapshot []entity.Product
	for _, id := range r.order {
		snapshot = append(snapshot, *r.items[id])
	}
	var out []*entity.ProductView
	for _, p := range inventory.LowStock(snapshot) {
		out = append(out, &entity.ProductView{Product: p})
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if err := uuidColumn(p.ID); err != nil {
		return err
	}
	existing, ok := r.items[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.CreatedAt = existing.CreatedAt
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if err := uuidColumn(id); err != nil {
		return err
	}
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) LockForUpdate(_ context.Context, id string) (*entity.Product, error) {
	if err := uuidColumn(id); err != nil {
		return nil, err
	}
	if p, ok := r.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) SetQuantity(_ context.Context, id string, quantity int) error {
	p, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.QuantityInStock = quantity
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int, error) { return len(r.items), nil }

func (r *fakeProductRepo) TotalValue(_ context.Context) (decimal.Decimal, error) {
	var snapshot []entity.Product
	for _, p := range r.items {
		snapshot = append(snapshot, *p)
	}
	return inventory.TotalValue(snapshot), nil
}

type fakeOrderRepo struct {
	items map[string]*entity.Order
	order []string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	for _, existing := range r.items {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *o
	r.items[o.ID] = &cp
	r.order = append(r.order, o.ID)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.OrderView, error) {
	if err := uuidColumn(id); err != nil {
		return nil, err
	}
	if o, ok := r.items[id]; ok {
		return &entity.OrderView{Order: *o}, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetByNumber(_ context.Context, number string) (*entity.OrderView, error) {
	for _, o := range r.items {
		if o.OrderNumber == number {
			return &entity.OrderView{Order: *o}, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(_ context.Context, _, _ int) ([]*entity.OrderView, error) {
	out := make([]*entity.OrderView, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, &entity.OrderView{Order: *r.items[id]})
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStatus(_ context.Context, status string) ([]*entity.OrderView, error) {
	var out []*entity.OrderView
	for _, id := range r.order {
		if o := r.items[id]; o.Status == status {
			out = append(out, &entity.OrderView{Order: *o})
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	if err := uuidColumn(o.ID); err != nil {
		return err
	}
	existing, ok := r.items[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.SupplierID = o.SupplierID
	existing.OrderDate = o.OrderDate
	existing.ExpectedDeliveryDate = o.ExpectedDeliveryDate
	existing.TotalAmount = o.TotalAmount
	return nil
}

func (r *fakeOrderRepo) TransitionStatus(_ context.Context, id string, from []string, to string) (bool, error) {
	if err := uuidColumn(id); err != nil {
		return false, err
	}
	o, ok := r.items[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if o.Status == f {
			o.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if err := uuidColumn(id); err != nil {
		return err
	}
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) LockNumbering(context.Context) error { return nil }

func (r *fakeOrderRepo) LastOrderNumber(_ context.Context, prefix string) (string, error) {
	for i := len(r.order) - 1; i >= 0; i-- {
		o, ok := r.items[r.order[i]]
		if ok && strings.HasPrefix(o.OrderNumber, prefix) {
			return o.OrderNumber, nil
		}
	}
	return "", nil
}

func (r *fakeOrderRepo) Count(context.Context) (int, error) { return len(r.items), nil }

func (r *fakeOrderRepo) TotalReceivedValue(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range r.items {
		if o.Status == entity.OrderStatusReceived {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

type fakeMovementRepo struct {
	items []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, _, _ int) ([]*entity.StockMovementView, error) {
	out := make([]*entity.StockMovementView, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, &entity.StockMovementView{StockMovement: *m})
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string) ([]*entity.StockMovementView, error) {
	if err := uuidColumn(productID); err != nil {
		return nil, err
	}
	var out []*entity.StockMovementView
	for _, m := range r.items {
		if m.ProductID == productID {
			out = append(out, &entity.StockMovementView{StockMovement: *m})
		}
	}
	return out, nil
}

// fakeTx ejecuta los callbacks sobre los mismos repos en memoria. Si fn falla, restaura
// la cantidad de los productos para simular el rollback.
type fakeTx struct {
	orders    *fakeOrderRepo
	movements *fakeMovementRepo
	products  *fakeProductRepo
}

func (t *fakeTx) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(t.orders)
}

func (t *fakeTx) RunMovement(_ context.Context, fn func(repository.StockMovementRepository, repository.ProductRepository) error) error {
	saved := map[string]int{}
	for id, p := range t.products.items {
		saved[id] = p.QuantityInStock
	}
	movs := len(t.movements.items)
	if err := fn(t.movements, t.products); err != nil {
		for id, q := range saved {
			t.products.items[id].QuantityInStock = q
		}
		t.movements.items = t.movements.items[:movs]
		return err
	}
	return nil
}

// uuidColumn reproduce a Postgres: un texto que no es UUID en una columna uuid falla con 22P02.
func uuidColumn(id string) error {
	if usecase.IsID(id) {
		return nil
	}
	return &pgconn.PgError{
		Code:    "22P02",
		Message: fmt.Sprintf("invalid input syntax for type uuid: %q", id),
	}
}
