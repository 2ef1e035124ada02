package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo tal como lo expone el backend.
// Price es el precio vigente en el catálogo; el carrito captura su propia copia al agregar.
type Product struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string // gi, rashguard, belt, ...
	SizeOptions []string
	Stock       int
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAvailable indica si hay stock.
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// HasSize indica si size es una talla ofrecida. Un producto sin tallas acepta la talla vacía.
func (p *Product) HasSize(size string) bool {
	if len(p.SizeOptions) == 0 {
		return size == ""
	}
	for _, s := range p.SizeOptions {
		if s == size {
			return true
		}
	}
	return false
}
