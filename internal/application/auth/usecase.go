package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/jwt"
	"github.com/jhoicas/Inventario-stock/pkg/password"
	"github.com/jhoicas/Inventario-stock/pkg/validator"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y reseteo de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher *password.Hasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, jwtCfg: jwtCfg}
}

// RegisterUser alta pública: el rol es siempre staff. Username repetido → domain.ErrDuplicate.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	return uc.createAccount(ctx, &entity.User{
		Username: strings.TrimSpace(in.Username),
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Role:     entity.RoleStaff,
	}, in.Password)
}

// CreateUser alta con rol elegido; solo la invocan rutas de administrador y el CLI.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	return uc.createAccount(ctx, &entity.User{
		Username: strings.TrimSpace(in.Username),
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Role:     in.Role,
	}, in.Password)
}

func (uc *AuthUseCase) createAccount(ctx context.Context, user *entity.User, plain string) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := uc.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}
	user.ID = uuid.New().String()
	user.PasswordHash = hash
	user.CreatedAt = time.Now()
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := usecase.ToUserResponse(user)
	return &resp, nil
}

// Login verifica usuario/contraseña y emite el JWT. Usuario inexistente y contraseña
// incorrecta responden igual (domain.ErrUnauthorized). Si el hash usa un costo distinto al
// configurado se regenera en el momento.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if uc.hasher.NeedsRehash(user.PasswordHash) {
		if hash, err := uc.hasher.Hash(in.Password); err == nil {
			// El login ya es válido; si el rehash no se guarda se reintenta en el próximo.
			if err := uc.userRepo.UpdatePassword(ctx, user.ID, hash); err == nil {
				user.PasswordHash = hash
			}
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    usecase.ToUserResponse(user),
	}, nil
}

// ResetPassword asigna una contraseña temporal aleatoria y la devuelve en claro (una sola vez).
func (uc *AuthUseCase) ResetPassword(ctx context.Context, userID string) (string, error) {
	if !usecase.IsID(userID) {
		return "", domain.ErrUserNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	return uc.resetFor(ctx, user)
}

// ResetPasswordByUsername igual que ResetPassword pero localiza la cuenta por username (CLI).
func (uc *AuthUseCase) ResetPasswordByUsername(ctx context.Context, username string) (string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	return uc.resetFor(ctx, user)
}

func (uc *AuthUseCase) resetFor(ctx context.Context, user *entity.User) (string, error) {
	temp, err := password.GenerateTemporaryPassword()
	if err != nil {
		return "", err
	}
	hash, err := uc.hasher.Hash(temp)
	if err != nil {
		return "", err
	}
	if err := uc.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return "", err
	}
	return temp, nil
}
