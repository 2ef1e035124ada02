package dto

import "github.com/shopspring/decimal"

func init() {
	// El backend modela el dinero como float64: los decimales viajan como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP de las vistas locales.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError cuerpo de error que devuelve el backend REST.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// PageRequest paginación para listados del back office.
type PageRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Pagination metadatos de página que devuelve el backend.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// MessageResponse respuesta genérica {success, message}.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
