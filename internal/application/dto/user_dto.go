package dto

import "time"

// RegisterRequest alta pública de cuenta. Siempre crea un usuario staff.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"username"`
	Password string `json:"password" form:"password" validate:"strongpwd"`
	FullName string `json:"fullName" form:"fullName" validate:"notblank,max=150"`
	Email    string `json:"email" form:"email" validate:"omitempty,emailfmt"`
}

// CreateUserRequest alta de cuenta por un administrador, con rol explícito.
type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"username"`
	Password string `json:"password" form:"password" validate:"strongpwd"`
	FullName string `json:"fullName" form:"fullName" validate:"notblank,max=150"`
	Email    string `json:"email" form:"email" validate:"omitempty,emailfmt"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin staff"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"notblank"`
	Password string `json:"password" form:"password" validate:"notblank"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UpdateUserRequest corrección de perfil por un administrador (no cambia la contraseña).
type UpdateUserRequest struct {
	Username string `json:"username" form:"username" validate:"username"`
	FullName string `json:"fullName" form:"fullName" validate:"notblank,max=150"`
	Email    string `json:"email" form:"email" validate:"omitempty,emailfmt"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin staff"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ResetPasswordResponse contraseña temporal generada; se muestra una sola vez.
type ResetPasswordResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	TemporaryPassword string `json:"temporaryPassword"`
}
