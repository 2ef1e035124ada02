// Package checkout orquesta la compra de invitado: crear la orden desde el carrito,
// pagarla con la pasarela simulada, consultar su estado y emitir el comprobante.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// Cart lo que el checkout usa del contenedor del carrito (lo implementa cart.Store).
type Cart interface {
	HasItems() bool
	CheckoutPayload() []dto.CartItem
	TotalPrice() decimal.Decimal
	ClearCart(ctx context.Context) error
}

// UseCase casos de uso del checkout.
type UseCase struct {
	cart     Cart
	orders   ports.OrderService
	payments ports.PaymentService
	receipts ports.ReceiptRenderer
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(cart Cart, orders ports.OrderService, payments ports.PaymentService, receipts ports.ReceiptRenderer, log zerolog.Logger) *UseCase {
	return &UseCase{cart: cart, orders: orders, payments: payments, receipts: receipts, log: log}
}

// PlaceOrder valida email y dirección, rechaza un carrito vacío, crea la orden con la
// proyección del carrito (precios capturados) y vacía el carrito solo si el backend la aceptó.
func (uc *UseCase) PlaceOrder(ctx context.Context, email string, address dto.AddressDTO) (*entity.Order, error) {
	if !uc.cart.HasItems() {
		return nil, domain.ErrEmptyCart
	}
	in := dto.CreateOrderRequest{
		GuestEmail:      strings.TrimSpace(email),
		ShippingAddress: address,
		Items:           uc.cart.CheckoutPayload(),
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	order, err := uc.orders.Create(ctx, in)
	if err != nil {
		uc.log.Warn().Err(err).Str("email", in.GuestEmail).Msg("no se pudo crear la orden")
		return nil, err
	}
	if err := uc.cart.ClearCart(ctx); err != nil {
		// La orden ya existe en el backend: no se revierte, solo se registra.
		uc.log.Error().Err(err).Str("order", order.OrderNumber).Msg("orden creada pero no se pudo vaciar el carrito")
	}
	uc.log.Info().Str("order", order.OrderNumber).Str("total", order.TotalAmount.String()).Msg("orden creada")
	return order, nil
}

// PayOrder valida localmente la tarjeta y envía el pago a la pasarela simulada.
// Un pago rechazado (success=false) devuelve ErrInvalidCard con el mensaje de la pasarela.
func (uc *UseCase) PayOrder(ctx context.Context, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	check := ValidateCard(in.CardNumber)
	if !check.Valid {
		return nil, fmt.Errorf("checkout: número de tarjeta %s: %w", check.Type, domain.ErrInvalidCard)
	}
	in.CardNumber = normalizeCard(in.CardNumber)

	res, err := uc.payments.Process(ctx, in)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return res, fmt.Errorf("checkout: %s: %w", res.Message, domain.ErrInvalidCard)
	}
	uc.log.Info().Uint("order_id", in.OrderID).Str("transaction", res.TransactionID).Str("card", check.Type).Msg("pago aprobado")
	return res, nil
}

// TrackOrder consulta una orden por su número.
func (uc *UseCase) TrackOrder(ctx context.Context, orderNumber string) (*entity.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, fmt.Errorf("checkout: número de orden vacío: %w", domain.ErrInvalidInput)
	}
	return uc.orders.Track(ctx, orderNumber)
}

// OrdersByEmail órdenes de invitado asociadas a un email.
func (uc *UseCase) OrdersByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	email = strings.TrimSpace(email)
	if err := dto.Validate(struct {
		Email string `validate:"required,email"`
	}{email}); err != nil {
		return nil, err
	}
	return uc.orders.ByEmail(ctx, email)
}

// Receipt busca la orden y genera su comprobante PDF.
func (uc *UseCase) Receipt(ctx context.Context, orderNumber string) ([]byte, error) {
	order, err := uc.TrackOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return uc.receipts.RenderReceipt(ctx, order)
}
