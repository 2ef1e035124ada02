package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-client/internal/application/admin"
	"github.com/jhoicas/storefront-client/internal/application/catalog"
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/guard"
	"github.com/jhoicas/storefront-client/internal/application/session"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// DashboardPath destino por defecto tras el login.
const DashboardPath = "/admin"

// AdminHandler vistas del back office.
type AdminHandler struct {
	session *session.Store
	admin   *admin.UseCase
	catalog *catalog.Store
}

// NewAdminHandler construye el handler.
func NewAdminHandler(s *session.Store, uc *admin.UseCase, products *catalog.Store) *AdminHandler {
	return &AdminHandler{session: s, admin: uc, catalog: products}
}

// LoginForm godoc
// @Summary      Estado de la vista de login
// @Tags         admin
// @Produce      json
// @Param        redirect  query  string  false  "Destino tras el login"
// @Success      200  {object}  dto.LoginView
// @Success      302
// @Router       /admin/login [get]
func (h *AdminHandler) LoginForm(c *fiber.Ctx) error {
	target := guard.SafeReturn(c.Query("redirect"), DashboardPath)
	if h.session.IsAuthenticated() {
		return c.Redirect(target, fiber.StatusFound)
	}
	return c.JSON(dto.LoginView{Redirect: target, Error: h.session.Error()})
}

// Login godoc
// @Summary      Login del back office
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        redirect  query  string  false  "Destino tras el login"
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err, "datos inválidos")
	}
	if err := h.session.Login(c.UserContext(), in.Email, in.Password); err != nil {
		status, code := errorStatus(err)
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: h.session.Error()})
	}
	return c.Redirect(guard.SafeReturn(c.Query("redirect"), DashboardPath), fiber.StatusSeeOther)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         admin
// @Success      303
// @Router       /admin/logout [post]
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	// session.Logout ya registra el fallo; la vista vuelve al login igualmente.
	_ = h.session.Logout(c.UserContext())
	return c.Redirect(guard.LoginPath, fiber.StatusSeeOther)
}

// Dashboard godoc
// @Summary      Dashboard: identidad, capacidades y métricas
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.DashboardView
// @Router       /admin [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.admin.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to load stats")
	}
	return c.JSON(dto.DashboardView{
		Admin:        toAdminUserDTO(h.session.User()),
		Capabilities: capabilities(h.session.Can),
		Stats:        stats,
	})
}

// Products godoc
// @Summary      Productos (administración)
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /admin/products [get]
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	if err := h.catalog.FetchProducts(c.UserContext()); err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	return c.JSON(toProductList(h.catalog.Products()))
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/products [post]
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.catalog.CreateProduct(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
}

// UpdateProduct godoc
// @Summary      Actualizar producto
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.catalog.UpdateProduct(c.UserContext(), uint(id), in)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}
	return c.JSON(toProductResponse(p))
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	if err := h.catalog.DeleteProduct(c.UserContext(), uint(id)); err != nil {
		return respondError(c, err, "Failed to delete product")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Product deleted successfully"})
}

// Orders godoc
// @Summary      Órdenes paginadas
// @Tags         admin
// @Produce      json
// @Param        page   query  int  false  "Página (desde 1)"
// @Param        limit  query  int  false  "Tamaño de página (máx 100)"
// @Success      200  {object}  dto.OrdersEnvelope
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/orders [get]
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "page y limit deben ser enteros"})
	}
	orders, pagination, err := h.admin.Orders(c.UserContext(), page)
	if err != nil {
		return respondError(c, err, "Failed to fetch orders")
	}
	return c.JSON(dto.OrdersEnvelope{Orders: toOrderList(orders), Pagination: pagination})
}

// UpdateOrderStatus godoc
// @Summary      Cambiar estado de una orden
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.OrderEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.admin.UpdateOrderStatus(c.UserContext(), uint(id), entity.OrderStatus(in.Status))
	if err != nil {
		return respondError(c, err, "Failed to update order status")
	}
	return c.JSON(dto.OrderEnvelope{Order: toOrderDTO(order)})
}

// UploadImage godoc
// @Summary      Subir imagen de producto
// @Tags         admin
// @Accept       mpfd
// @Produce      json
// @Param        image  formData  file  true  "Imagen (jpg, png, gif, webp)"
// @Success      201  {object}  dto.UploadImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/upload/image [post]
func (h *AdminHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo image requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return badBody(c)
	}
	defer f.Close()

	imageURL, err := h.admin.UploadImage(c.UserContext(), fh.Filename, f)
	if err != nil {
		return respondError(c, err, "Failed to upload image")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadImageResponse{Success: true, ImageURL: imageURL, Message: "Image uploaded successfully"})
}

// DeleteImage godoc
// @Summary      Borrar imagen subida
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteImageRequest  true  "URL de la imagen"
// @Success      200  {object}  dto.MessageResponse
// @Router       /admin/upload/image [delete]
func (h *AdminHandler) DeleteImage(c *fiber.Ctx) error {
	var in dto.DeleteImageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.admin.DeleteImage(c.UserContext(), in.ImageURL); err != nil {
		return respondError(c, err, "Failed to delete image")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Image deleted successfully"})
}

// Fallback lleva cualquier subruta desconocida de /admin al dashboard.
func (h *AdminHandler) Fallback(c *fiber.Ctx) error {
	return c.Redirect(DashboardPath, fiber.StatusFound)
}
