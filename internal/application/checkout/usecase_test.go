package checkout_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/application/checkout"
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

type fakeCart struct {
	items   []dto.CartItem
	cleared bool
}

func (c *fakeCart) HasItems() bool                  { return len(c.items) > 0 }
func (c *fakeCart) CheckoutPayload() []dto.CartItem { return c.items }
func (c *fakeCart) TotalPrice() decimal.Decimal     { return decimal.Zero }
func (c *fakeCart) ClearCart(context.Context) error {
	c.items = nil
	c.cleared = true
	return nil
}

type fakeOrders struct {
	created   *dto.CreateOrderRequest
	createErr error
	tracked   *entity.Order
}

func (f *fakeOrders) Create(_ context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &in
	return &entity.Order{ID: 10, OrderNumber: "BJJ-1", TotalAmount: decimal.NewFromInt(240)}, nil
}

func (f *fakeOrders) Track(_ context.Context, n string) (*entity.Order, error) {
	if f.tracked == nil || f.tracked.OrderNumber != n {
		return nil, &domain.RemoteError{Status: 404, Message: "Order not found"}
	}
	return f.tracked, nil
}

func (f *fakeOrders) ByEmail(context.Context, string) ([]*entity.Order, error) {
	return []*entity.Order{{ID: 1}}, nil
}

func (f *fakeOrders) List(context.Context, dto.PageRequest) ([]*entity.Order, *dto.Pagination, error) {
	return nil, nil, nil
}

func (f *fakeOrders) UpdateStatus(context.Context, uint, entity.OrderStatus) (*entity.Order, error) {
	return nil, nil
}

type fakePayments struct {
	got *dto.PaymentRequest
	res *dto.PaymentResponse
}

func (f *fakePayments) Process(_ context.Context, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	f.got = &in
	return f.res, nil
}

type fakeReceipts struct{}

func (fakeReceipts) RenderReceipt(_ context.Context, o *entity.Order) ([]byte, error) {
	return []byte("%PDF-" + o.OrderNumber), nil
}

func address() dto.AddressDTO {
	return dto.AddressDTO{FirstName: "Ana", LastName: "Pérez", Address1: "Calle 1", City: "Cali", ZipCode: "760001", Country: "CO"}
}

func newUC(cart *fakeCart, orders *fakeOrders, payments *fakePayments) *checkout.UseCase {
	return checkout.NewUseCase(cart, orders, payments, fakeReceipts{}, zerolog.Nop())
}

func TestPlaceOrder_ExitoVaciaElCarrito(t *testing.T) {
	cart := &fakeCart{items: []dto.CartItem{{ProductID: 1, Quantity: 2, Size: "A2", Price: decimal.NewFromInt(120)}}}
	orders := &fakeOrders{}
	uc := newUC(cart, orders, &fakePayments{})

	order, err := uc.PlaceOrder(context.Background(), " ana@correo.co ", address())
	require.NoError(t, err)
	assert.Equal(t, "BJJ-1", order.OrderNumber)
	assert.True(t, cart.cleared)
	require.NotNil(t, orders.created)
	assert.Equal(t, "ana@correo.co", orders.created.GuestEmail)
	assert.Len(t, orders.created.Items, 1)
}

func TestPlaceOrder_CarritoVacio(t *testing.T) {
	uc := newUC(&fakeCart{}, &fakeOrders{}, &fakePayments{})
	_, err := uc.PlaceOrder(context.Background(), "ana@correo.co", address())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrder_DireccionIncompleta(t *testing.T) {
	cart := &fakeCart{items: []dto.CartItem{{ProductID: 1, Quantity: 1}}}
	addr := address()
	addr.ZipCode = ""
	_, err := newUC(cart, &fakeOrders{}, &fakePayments{}).PlaceOrder(context.Background(), "ana@correo.co", addr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ZipCode")
	assert.False(t, cart.cleared)
}

func TestPlaceOrder_FalloRemotoConservaElCarrito(t *testing.T) {
	cart := &fakeCart{items: []dto.CartItem{{ProductID: 1, Quantity: 1}}}
	orders := &fakeOrders{createErr: &domain.RemoteError{Status: 400, Message: "Insufficient stock"}}
	_, err := newUC(cart, orders, &fakePayments{}).PlaceOrder(context.Background(), "ana@correo.co", address())
	assert.Equal(t, "Insufficient stock", domain.MessageOf(err, ""))
	assert.False(t, cart.cleared)
	assert.True(t, cart.HasItems())
}

func paymentReq(card string) dto.PaymentRequest {
	return dto.PaymentRequest{OrderID: 10, Amount: decimal.NewFromInt(240), CardNumber: card, ExpiryDate: "12/30", CVV: "123", NameOnCard: "ANA PEREZ"}
}

func TestPayOrder_TarjetaInvalidaNoLlamaALaPasarela(t *testing.T) {
	payments := &fakePayments{}
	_, err := newUC(&fakeCart{}, &fakeOrders{}, payments).PayOrder(context.Background(), paymentReq("1234 5678"))
	assert.ErrorIs(t, err, domain.ErrInvalidCard)
	assert.Nil(t, payments.got)
}

func TestPayOrder_Aprobado(t *testing.T) {
	payments := &fakePayments{res: &dto.PaymentResponse{Success: true, TransactionID: "txn_1"}}
	res, err := newUC(&fakeCart{}, &fakeOrders{}, payments).PayOrder(context.Background(), paymentReq("4242 4242 4242 4242"))
	require.NoError(t, err)
	assert.Equal(t, "txn_1", res.TransactionID)
	assert.Equal(t, checkout.TestCardSuccess, payments.got.CardNumber, "se envía sin espacios")
}

func TestPayOrder_Rechazado(t *testing.T) {
	payments := &fakePayments{res: &dto.PaymentResponse{Success: false, Message: "Card declined"}}
	res, err := newUC(&fakeCart{}, &fakeOrders{}, payments).PayOrder(context.Background(), paymentReq(checkout.TestCardDeclined))
	assert.ErrorIs(t, err, domain.ErrInvalidCard)
	require.NotNil(t, res)
	assert.Equal(t, "Card declined", res.Message)
}

func TestTrackYReceipt(t *testing.T) {
	orders := &fakeOrders{tracked: &entity.Order{OrderNumber: "BJJ-7"}}
	uc := newUC(&fakeCart{}, orders, &fakePayments{})

	_, err := uc.TrackOrder(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	raw, err := uc.Receipt(context.Background(), "BJJ-7")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-BJJ-7", string(raw))

	_, err = uc.Receipt(context.Background(), "BJJ-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrdersByEmail_ValidaFormato(t *testing.T) {
	uc := newUC(&fakeCart{}, &fakeOrders{}, &fakePayments{})
	_, err := uc.OrdersByEmail(context.Background(), "no-es-email")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	orders, err := uc.OrdersByEmail(context.Background(), "ana@correo.co")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestValidateCard(t *testing.T) {
	assert.Equal(t, dto.CardCheck{Valid: true, Type: "visa"}, checkout.ValidateCard(checkout.TestCardSuccess))
	assert.Equal(t, dto.CardCheck{Valid: true, Type: "visa"}, checkout.ValidateCard("4242-4242-4242-4242"))
	assert.Equal(t, dto.CardCheck{Valid: true, Type: "mastercard"}, checkout.ValidateCard("5555555555554444"))
	assert.Equal(t, dto.CardCheck{Valid: true, Type: "amex"}, checkout.ValidateCard(checkout.TestCardAmex))
	assert.False(t, checkout.ValidateCard("4242").Valid)
	assert.False(t, checkout.ValidateCard("6011111111111117").Valid)
	assert.False(t, checkout.ValidateCard("4242x24242424242").Valid)
	assert.Len(t, checkout.TestCards(), 4)
}
