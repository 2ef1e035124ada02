package dto

import "github.com/shopspring/decimal"

// Cuerpos y respuestas de las vistas locales (Fiber). No viajan al backend.

// AddToCartRequest body de POST /cart. Quantity 0 se interpreta como 1.
type AddToCartRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// UpdateCartItemRequest body de PUT /cart. Quantity 0 elimina la línea.
type UpdateCartItemRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" validate:"min=0"`
}

// CartLineView línea del carrito para la vista.
type CartLineView struct {
	ProductID uint             `json:"product_id"`
	Size      string           `json:"size"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// CartView estado completo del carrito.
type CartView struct {
	Items      []CartLineView  `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Hydrated   int             `json:"hydrated"`
}

// CheckoutRequest body de POST /checkout.
type CheckoutRequest struct {
	Email           string     `json:"email"`
	ShippingAddress AddressDTO `json:"shipping_address"`
}

// ValidateCardRequest body de POST /payment/validate-card.
type ValidateCardRequest struct {
	CardNumber string `json:"card_number"`
}

// FilterDTO filtro activo del catálogo.
type FilterDTO struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// ProductListView respuesta de GET /products.
type ProductListView struct {
	Products   []ProductResponse `json:"products"`
	Categories []string          `json:"categories"`
	Filter     FilterDTO         `json:"filter"`
	Total      int               `json:"total"`
}

// LoginView respuesta de GET /admin/login.
type LoginView struct {
	Authenticated bool   `json:"authenticated"`
	Redirect      string `json:"redirect"`
	Error         string `json:"error,omitempty"`
}

// DashboardView respuesta de GET /admin.
type DashboardView struct {
	Admin        AdminUserDTO    `json:"admin"`
	Capabilities map[string]bool `json:"capabilities"`
	Stats        *StatsDTO       `json:"stats,omitempty"`
}
