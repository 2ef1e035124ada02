package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden en el backend.
type OrderStatus string

// Estados válidos de una orden.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lista los estados en el orden del flujo.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid indica si s es uno de los estados conocidos.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Address dirección de envío de una orden de invitado.
type Address struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// Order cabecera de una orden.
type Order struct {
	ID              uint
	OrderNumber     string // BJJ-<unix>
	GuestEmail      string
	ShippingAddress Address
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	StripePaymentID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem línea de una orden; Price es el precio cobrado por unidad.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Product   *Product
	Quantity  int
	Price     decimal.Decimal
	Size      string
}

// Subtotal devuelve Price * Quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
