package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // ajuste (delta con signo)
)

// StockMovement evento de auditoría inmutable: se inserta, nunca se actualiza.
type StockMovement struct {
	ID              string    `db:"id"`
	ProductID       string    `db:"product_id"`
	MovementType    string    `db:"movement_type"`
	Quantity        int       `db:"quantity"`
	ReferenceNumber string    `db:"reference_number"`
	Notes           string    `db:"notes"`
	UserID          string    `db:"user_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// StockMovementView proyección de lectura con datos del producto y del usuario.
type StockMovementView struct {
	StockMovement
	ProductName string `db:"product_name"`
	ProductSKU  string `db:"product_sku"`
	UserName    string `db:"user_name"`
}

// IsValidMovementType indica si t es un tipo de movimiento conocido.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment:
		return true
	}
	return false
}
