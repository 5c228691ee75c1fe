package dto

// SupplierRequest alta o corrección de un proveedor. Email y teléfono son opcionales
// pero, si vienen, deben tener formato válido.
type SupplierRequest struct {
	Name          string `json:"name" form:"name" validate:"notblank,max=150"`
	ContactPerson string `json:"contactPerson" form:"contactPerson" validate:"max=150"`
	Email         string `json:"email" form:"email" validate:"omitempty,emailfmt"`
	Phone         string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Address       string `json:"address" form:"address" validate:"max=300"`
}

// SupplierResponse proveedor con su número de productos.
type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ProductCount  int    `json:"productCount,omitempty"`
	CreatedAt     string `json:"createdAt"`
}
