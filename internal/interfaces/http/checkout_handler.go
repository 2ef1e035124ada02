package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-client/internal/application/checkout"
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain"
)

// CheckoutHandler checkout de invitado, seguimiento de órdenes y pago simulado.
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// PlaceOrder godoc
// @Summary      Crear orden con el contenido del carrito
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Email y dirección de envío"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.uc.PlaceOrder(c.UserContext(), in.Email, in.ShippingAddress)
	if err != nil {
		return respondError(c, err, "Failed to create order")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderResponse{Order: toOrderDTO(order), Message: "Order created successfully"})
}

// Track godoc
// @Summary      Seguimiento de una orden
// @Tags         orders
// @Produce      json
// @Param        orderNumber  path  string  true  "Número de orden (BJJ-...)"
// @Success      200  {object}  dto.OrderEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/track/{orderNumber} [get]
func (h *CheckoutHandler) Track(c *fiber.Ctx) error {
	order, err := h.uc.TrackOrder(c.UserContext(), c.Params("orderNumber"))
	if err != nil {
		return respondError(c, err, "Order not found")
	}
	return c.JSON(dto.OrderEnvelope{Order: toOrderDTO(order)})
}

// Receipt godoc
// @Summary      Comprobante PDF de una orden
// @Tags         orders
// @Produce      application/pdf
// @Param        orderNumber  path  string  true  "Número de orden"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /orders/track/{orderNumber}/receipt.pdf [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	number := c.Params("orderNumber")
	raw, err := h.uc.Receipt(c.UserContext(), number)
	if err != nil {
		return respondError(c, err, "no se pudo generar el comprobante")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, number))
	return c.Send(raw)
}

// ByEmail godoc
// @Summary      Órdenes de invitado por email
// @Tags         orders
// @Produce      json
// @Param        email  path  string  true  "Email del invitado"
// @Success      200  {object}  dto.OrdersEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /orders/email/{email} [get]
func (h *CheckoutHandler) ByEmail(c *fiber.Ctx) error {
	orders, err := h.uc.OrdersByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return respondError(c, err, "Failed to fetch orders")
	}
	return c.JSON(dto.OrdersEnvelope{Orders: toOrderList(orders)})
}

// Pay godoc
// @Summary      Pago simulado de una orden
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentRequest  true  "Datos de la tarjeta"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.PaymentResponse
// @Router       /payment [post]
func (h *CheckoutHandler) Pay(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.PayOrder(c.UserContext(), in)
	if err != nil {
		if res != nil && errors.Is(err, domain.ErrInvalidCard) {
			return c.Status(fiber.StatusPaymentRequired).JSON(res)
		}
		return respondError(c, err, "Payment processing failed")
	}
	return c.JSON(res)
}

// TestCards godoc
// @Summary      Tarjetas de prueba de la pasarela simulada
// @Tags         payment
// @Produce      json
// @Success      200  {array}  checkout.TestCard
// @Router       /payment/test-cards [get]
func (h *CheckoutHandler) TestCards(c *fiber.Ctx) error {
	return c.JSON(checkout.TestCards())
}

// ValidateCard godoc
// @Summary      Validación local del número de tarjeta
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateCardRequest  true  "Número de tarjeta"
// @Success      200   {object}  dto.CardCheck
// @Router       /payment/validate-card [post]
func (h *CheckoutHandler) ValidateCard(c *fiber.Ctx) error {
	var in dto.ValidateCardRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(checkout.ValidateCard(in.CardNumber))
}
