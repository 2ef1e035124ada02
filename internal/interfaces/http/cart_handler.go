package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-client/internal/application/cart"
	"github.com/jhoicas/storefront-client/internal/application/catalog"
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// CartHandler vistas del carrito de invitado.
type CartHandler struct {
	cart    *cart.Store
	catalog *catalog.Store
}

// NewCartHandler construye el handler.
func NewCartHandler(c *cart.Store, products *catalog.Store) *CartHandler {
	return &CartHandler{cart: c, catalog: products}
}

// Get godoc
// @Summary      Ver carrito (hidrata las líneas sin detalle de producto)
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartView
// @Router       /cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	if h.cart.HydratedLines() < len(h.cart.Snapshot()) {
		h.cart.LoadAllProductDetails(c.UserContext())
	}
	return c.JSON(cartView(h.cart.Snapshot()))
}

// Add godoc
// @Summary      Agregar al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto, talla y cantidad"
// @Success      201   {object}  dto.CartView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /cart [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err, "datos inválidos")
	}

	p, err := h.product(c, in.ProductID)
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}
	if !p.HasSize(in.Size) {
		return respondError(c, fmt.Errorf("talla %q no disponible para %s: %w", in.Size, p.Name, domain.ErrInvalidInput), "talla no disponible")
	}

	line := entity.CartLine{ProductID: p.ID, Quantity: in.Quantity, Size: in.Size, Price: p.Price, Product: p}
	if err := h.cart.AddItem(c.UserContext(), line); err != nil {
		return respondError(c, err, "no se pudo agregar al carrito")
	}
	return c.Status(fiber.StatusCreated).JSON(cartView(h.cart.Snapshot()))
}

// Update godoc
// @Summary      Cambiar cantidad (0 elimina la línea)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCartItemRequest  true  "Línea y nueva cantidad"
// @Success      200   {object}  dto.CartView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /cart [put]
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err, "datos inválidos")
	}
	if err := h.cart.UpdateQuantity(c.UserContext(), in.ProductID, in.Size, in.Quantity); err != nil {
		return respondError(c, err, "no se pudo actualizar el carrito")
	}
	return c.JSON(cartView(h.cart.Snapshot()))
}

// Remove godoc
// @Summary      Quitar una línea (product_id y size) o vaciar el carrito (sin product_id)
// @Tags         cart
// @Produce      json
// @Param        product_id  query  int     false  "ID del producto"
// @Param        size        query  string  false  "Talla"
// @Success      200  {object}  dto.CartView
// @Router       /cart [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id")
	var err error
	if productID > 0 {
		err = h.cart.RemoveItem(c.UserContext(), uint(productID), c.Query("size"))
	} else {
		err = h.cart.ClearCart(c.UserContext())
	}
	if err != nil {
		return respondError(c, err, "no se pudo actualizar el carrito")
	}
	return c.JSON(cartView(h.cart.Snapshot()))
}

// product busca primero en el catálogo cargado y si no está lo pide al backend.
func (h *CartHandler) product(c *fiber.Ctx, id uint) (*entity.Product, error) {
	p, err := h.catalog.Find(id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return h.catalog.FetchProduct(c.UserContext(), id)
}
