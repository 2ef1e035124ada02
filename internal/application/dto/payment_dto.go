package dto

import "github.com/shopspring/decimal"

// PaymentRequest entrada de POST /api/payment/process (pasarela simulada).
type PaymentRequest struct {
	OrderID    uint            `json:"order_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	CardNumber string          `json:"card_number" validate:"required"`
	ExpiryDate string          `json:"expiry_date" validate:"required"`
	CVV        string          `json:"cvv" validate:"required,numeric,min=3,max=4"`
	NameOnCard string          `json:"name_on_card" validate:"required"`
}

// PaymentResponse salida del procesamiento de pago.
type PaymentResponse struct {
	Success       bool      `json:"success"`
	TransactionID string    `json:"transaction_id"`
	Message       string    `json:"message"`
	Order         *OrderDTO `json:"order,omitempty"`
}

// CardCheck resultado de la validación local de la tarjeta.
type CardCheck struct {
	Valid bool   `json:"valid"`
	Type  string `json:"type"` // visa, mastercard, amex, unknown
}
