package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/validator"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría y devuelve su ID. Nombre repetido → domain.ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (string, error) {
	if err := validator.Struct(in); err != nil {
		return "", err
	}
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

// GetByID devuelve la categoría con su número de productos, o nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	if !IsID(id) {
		return nil, nil
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	count, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c)
	resp.ProductCount = count
	return &resp, nil
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update corrige nombre y descripción.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	return uc.repo.Update(ctx, &entity.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	})
}

// Delete elimina la categoría; con productos asociados → domain.ErrReferenced.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   formatDate(&c.CreatedAt),
	}
}
