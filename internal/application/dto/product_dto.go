package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SizeList acepta size_options como "A1,A2,A3" (formato del backend) o como ["A1","A2"].
type SizeList []string

// UnmarshalJSON decodifica ambos formatos.
func (s *SizeList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SplitSizes(raw)
	return nil
}

// MarshalJSON serializa en el formato de string separado por comas que persiste el backend.
func (s SizeList) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(s, ","))
}

// SplitSizes parte "A1, A2" en ["A1","A2"] ignorando vacíos.
func SplitSizes(raw string) []string {
	sizes := []string{}
	for _, size := range strings.Split(raw, ",") {
		if size = strings.TrimSpace(size); size != "" {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

// ProductResponse producto tal como lo devuelve GET /api/products[/:id].
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SizeOptions SizeList        `json:"size_options"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductRequest entrada para crear un producto (POST /api/admin/products).
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required"`
	SizeOptions SizeList        `json:"size_options"`
	Stock       int             `json:"stock" validate:"min=0"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductRequest actualización parcial (PUT /api/admin/products/:id).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	SizeOptions SizeList         `json:"size_options,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
}
