package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa una cuenta del sistema.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"` // bcrypt, nunca texto plano
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// IsValidRole indica si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
