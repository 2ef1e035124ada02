package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-client/internal/application/catalog"
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/infrastructure/feed"
)

// CatalogHandler vistas públicas del catálogo.
type CatalogHandler struct {
	catalog *catalog.Store
	channel feed.Channel
	now     func() time.Time
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(store *catalog.Store, channel feed.Channel) *CatalogHandler {
	return &CatalogHandler{catalog: store, channel: channel, now: time.Now}
}

// List godoc
// @Summary      Catálogo filtrado
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Texto en nombre o descripción"
// @Param        category  query  string  false  "Categoría exacta"
// @Param        refresh   query  bool    false  "Vuelve a pedir el catálogo al backend"
// @Param        clear     query  bool    false  "Limpia los filtros"
// @Success      200  {object}  dto.ProductListView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("clear") {
		h.catalog.ClearFilters()
	}
	args := c.Context().QueryArgs()
	if args.Has("search") {
		h.catalog.SetSearchQuery(c.Query("search"))
	}
	if args.Has("category") {
		h.catalog.SetCategory(c.Query("category"))
	}
	if err := h.ensureLoaded(c, c.QueryBool("refresh")); err != nil {
		return respondError(c, err, "Failed to fetch products")
	}

	filtered := h.catalog.FilteredProducts()
	f := h.catalog.Filter()
	return c.JSON(dto.ProductListView{
		Products:   toProductList(filtered),
		Categories: h.catalog.AvailableCategories(),
		Filter:     dto.FilterDTO{Query: f.Query, Category: f.Category},
		Total:      len(filtered),
	})
}

// GetByID godoc
// @Summary      Detalle de producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	p, err := h.catalog.FetchProduct(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}
	return c.JSON(toProductResponse(p))
}

// Feed godoc
// @Summary      Feed RSS del catálogo filtrado (Google Merchant)
// @Tags         products
// @Produce      xml
// @Success      200  {string}  string
// @Router       /products/feed.xml [get]
func (h *CatalogHandler) Feed(c *fiber.Ctx) error {
	if err := h.ensureLoaded(c, false); err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	raw, err := feed.Build(h.channel, h.catalog.FilteredProducts(), h.now())
	if err != nil {
		return respondError(c, err, "no se pudo generar el feed")
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(raw)
}

func (h *CatalogHandler) ensureLoaded(c *fiber.Ctx, refresh bool) error {
	if h.catalog.HasProducts() && !refresh {
		return nil
	}
	return h.catalog.FetchProducts(c.UserContext())
}
