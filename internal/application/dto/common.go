package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=500"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Limit > 500 {
		p.Limit = 500
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// DateLayout formato de fechas en parámetros y respuestas (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// MutationResponse respuesta de las operaciones de escritura.
type MutationResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ID          string `json:"id,omitempty"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
