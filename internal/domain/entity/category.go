package entity

import "time"

// Category representa una categoría de productos (nombre único).
type Category struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
