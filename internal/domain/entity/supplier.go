package entity

import "time"

// Supplier representa un proveedor. Referenciado por Product y Order.
type Supplier struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	ContactPerson string    `db:"contact_person"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Address       string    `db:"address"`
	CreatedAt     time.Time `db:"created_at"`
}
