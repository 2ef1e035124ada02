package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/guard"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/infrastructure/api"
)

// errorStatus traduce un error de dominio a status HTTP y código de ErrorResponse.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrEmptyCart):
		return fiber.StatusBadRequest, "EMPTY_CART"
	case errors.Is(err, domain.ErrInvalidCard):
		return fiber.StatusPaymentRequired, "PAYMENT_DECLINED"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNetwork):
		return fiber.StatusBadGateway, "BACKEND_UNREACHABLE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// respondError escribe err como dto.ErrorResponse. Un 401 mientras se sirve una vista /admin
// (que no sea el login) redirige al login conservando el destino.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	if domain.IsUnauthorized(err) {
		if _, ok := api.LoginRedirect(c.Path()); ok {
			return c.Redirect(guard.LoginURL(c.OriginalURL()), fiber.StatusFound)
		}
	}
	status, code := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: errorMessage(err, status, fallback)})
}

// errorMessage prefiere el mensaje del backend; los errores locales de validación se muestran tal cual.
func errorMessage(err error, status int, fallback string) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return domain.MessageOf(err, fallback)
	}
	if status < fiber.StatusInternalServerError && status != fiber.StatusUnauthorized {
		return err.Error()
	}
	return fallback
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler manejador de errores de Fiber para errores no atendidos por los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return respondError(c, err, "error interno")
}
