package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/validator"
)

// UserUseCase administración de cuentas (solo admin). Alta y credenciales viven en auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	if !IsID(id) {
		return nil, nil
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUserResponse(u))
	}
	return out, nil
}

// Update corrige username, nombre, email y rol.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) error {
	if !IsID(id) {
		return domain.ErrUserNotFound
	}
	if err := validator.Struct(in); err != nil {
		return err
	}
	return uc.repo.Update(ctx, &entity.User{
		ID:       id,
		Username: strings.TrimSpace(in.Username),
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Role:     in.Role,
	})
}

// Delete elimina la cuenta. Un administrador no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrForbidden
	}
	if !IsID(id) {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ToUserResponse salida pública de un usuario (sin hash).
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
