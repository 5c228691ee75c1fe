package dto

// CategoryRequest alta o corrección de una categoría.
type CategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"notblank,max=100"`
	Description string `json:"description" form:"description" validate:"max=500"`
}

// CategoryResponse categoría con su número de productos.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount,omitempty"`
	CreatedAt    string `json:"createdAt"`
}
