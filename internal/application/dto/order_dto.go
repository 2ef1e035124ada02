package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem proyección mínima de una línea del carrito: es lo que se persiste localmente
// y lo que consume la creación de la orden.
type CartItem struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Size      string          `json:"size"`
	Price     decimal.Decimal `json:"price"`
}

// AddressDTO dirección de envío.
type AddressDTO struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Address1  string `json:"address1" validate:"required"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country"`
}

// CreateOrderRequest entrada de POST /api/orders.
type CreateOrderRequest struct {
	GuestEmail      string     `json:"guest_email" validate:"required,email"`
	ShippingAddress AddressDTO `json:"shipping_address"`
	Items           []CartItem `json:"items" validate:"required,min=1,dive"`
}

// OrderItemDTO línea de una orden.
type OrderItemDTO struct {
	ID        uint             `json:"id"`
	OrderID   uint             `json:"order_id"`
	ProductID uint             `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Size      string           `json:"size"`
}

// OrderDTO orden tal como la devuelve el backend.
type OrderDTO struct {
	ID              uint            `json:"id"`
	OrderNumber     string          `json:"order_number"`
	GuestEmail      string          `json:"guest_email"`
	ShippingAddress AddressDTO      `json:"shipping_address"`
	Items           []OrderItemDTO  `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	StripePaymentID string          `json:"stripe_payment_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderResponse respuesta de POST /api/orders.
type OrderResponse struct {
	Order   OrderDTO `json:"order"`
	Message string   `json:"message"`
}

// OrderEnvelope respuesta {order} de tracking y cambio de estado.
type OrderEnvelope struct {
	Order OrderDTO `json:"order"`
}

// OrdersEnvelope respuesta {orders} de listados.
type OrdersEnvelope struct {
	Orders     []OrderDTO  `json:"orders"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// UpdateOrderStatusRequest entrada de PUT /api/admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped delivered cancelled"`
}
