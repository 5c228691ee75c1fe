package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/domain/validation"
	"github.com/jhoicas/Inventario-stock/pkg/validator"
)

// ProductUseCase casos de uso CRUD y reportes de productos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, suppliers: suppliers}
}

// Create crea un producto y devuelve su ID. SKU repetido → domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (string, error) {
	now := time.Now()
	p, err := uc.productFromRequest(ctx, uuid.New().String(), in)
	if err != nil {
		return "", err
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := uc.repo.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if !IsID(id) {
		return nil, nil
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca en nombre, SKU y descripción; keyword vacío → lista completa (primera página).
func (uc *ProductUseCase) Search(ctx context.Context, keyword string) ([]dto.ProductResponse, error) {
	if strings.TrimSpace(keyword) == "" {
		return uc.List(ctx, dto.PageRequest{})
	}
	list, err := uc.repo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// LowStock productos con stock <= nivel de reorden, del más agotado al menos.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func (uc *ProductUseCase) ByCategory(ctx context.Context, categoryID string) ([]dto.ProductResponse, error) {
	if ve := validation.Check("categoryId", validation.RuleRequired, categoryID); ve != nil {
		return nil, ve
	}
	if err := checkRefID("categoryId", categoryID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Stats total de productos y valor del inventario, recalculados en cada llamada.
func (uc *ProductUseCase) Stats(ctx context.Context) (*dto.ProductStatsResponse, error) {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductStatsResponse{TotalProducts: count, TotalValue: money(total)}, nil
}

// Update corrección completa del registro (incluida la cantidad en stock).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	p, err := uc.productFromRequest(ctx, id, in)
	if err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, p)
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// productFromRequest valida el request, convierte los numéricos y comprueba que
// categoría y proveedor (si vienen) existan.
func (uc *ProductUseCase) productFromRequest(ctx context.Context, id string, in dto.ProductRequest) (*entity.Product, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.UnitPrice))
	if err != nil {
		return nil, domain.NewValidationError("unitPrice", validation.RulePrice, validation.Message("unitPrice", validation.RulePrice))
	}
	qty, err := parseIntOr("quantityInStock", in.QuantityInStock, 0)
	if err != nil {
		return nil, err
	}
	reorder, err := parseIntOr("reorderLevel", in.ReorderLevel, 0)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		SKU:             strings.TrimSpace(in.SKU),
		CategoryID:      strings.TrimSpace(in.CategoryID),
		SupplierID:      strings.TrimSpace(in.SupplierID),
		Description:     strings.TrimSpace(in.Description),
		UnitPrice:       price,
		QuantityInStock: qty,
		ReorderLevel:    reorder,
		ImageURL:        strings.TrimSpace(in.ImageURL),
	}
	if p.CategoryID != "" {
		if err := checkRefID("categoryId", p.CategoryID); err != nil {
			return nil, err
		}
		c, err := uc.categories.GetByID(ctx, p.CategoryID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.NewValidationError("categoryId", "exists", "la categoría no existe")
		}
	}
	if p.SupplierID != "" {
		if err := checkRefID("supplierId", p.SupplierID); err != nil {
			return nil, err
		}
		s, err := uc.suppliers.GetByID(ctx, p.SupplierID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.NewValidationError("supplierId", "exists", "el proveedor no existe")
		}
	}
	return p, nil
}

func toProductResponses(list []*entity.ProductView) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.ProductView) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		CategoryID:      p.CategoryID,
		CategoryName:    p.CategoryName,
		SupplierID:      p.SupplierID,
		SupplierName:    p.SupplierName,
		Description:     p.Description,
		UnitPrice:       p.UnitPrice,
		QuantityInStock: p.QuantityInStock,
		ReorderLevel:    p.ReorderLevel,
		ImageURL:        p.ImageURL,
		StockStatus:     string(inventory.Status(p.QuantityInStock, p.ReorderLevel)),
		LowStock:        inventory.IsLowStock(p.QuantityInStock, p.ReorderLevel),
		StockValue:      inventory.ProductStockValue(p.Product),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
