package dto

import "time"

// MovementRequest registro de un movimiento de stock. Para adjustment la cantidad es un
// delta con signo; para in/out debe ser positiva.
type MovementRequest struct {
	ProductID       string `json:"productId" form:"productId" validate:"notblank"`
	MovementType    string `json:"movementType" form:"movementType" validate:"required,oneof=in out adjustment"`
	Quantity        string `json:"quantity" form:"quantity" validate:"notblank,numeric"`
	ReferenceNumber string `json:"referenceNumber" form:"referenceNumber" validate:"max=100"`
	Notes           string `json:"notes" form:"notes" validate:"max=500"`
}

// MovementResponse salida de un movimiento con los datos de producto y usuario.
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductSKU      string    `json:"productSku"`
	MovementType    string    `json:"movementType"`
	Quantity        int       `json:"quantity"`
	ReferenceNumber string    `json:"referenceNumber"`
	Notes           string    `json:"notes"`
	UserID          string    `json:"userId"`
	UserName        string    `json:"userName"`
	CreatedAt       time.Time `json:"createdAt"`
}

// MovementResult resultado de registrar un movimiento: el stock resultante del producto.
type MovementResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	MovementID  string `json:"id"`
	NewQuantity int    `json:"newQuantity"`
	LowStock    bool   `json:"lowStock"`
}
