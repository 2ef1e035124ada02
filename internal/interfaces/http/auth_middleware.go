package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/guard"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// LocalRole clave de c.Locals con el rol del administrador (después de RequireAuth).
const LocalRole = "admin_role"

// Authorizer lo que los middlewares consultan de la sesión (lo implementa session.Store).
type Authorizer interface {
	Role() entity.Role
	Can(c entity.Capability) bool
}

// RequireAuth aplica el route guard: sin sesión válida redirige al login con ?redirect=<ruta original>.
func RequireAuth(g *guard.Guard, s Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := g.Check(c.UserContext(), guard.Route{Path: c.OriginalURL(), RequiresAuth: true})
		if !d.Allow {
			return c.Redirect(d.Redirect, fiber.StatusFound)
		}
		c.Locals(LocalRole, string(s.Role()))
		return c.Next()
	}
}

// RequireCapability deja pasar si el rol tiene al menos una de las capacidades indicadas.
// Debe ir después de RequireAuth.
func RequireCapability(s Authorizer, caps ...entity.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, capability := range caps {
			if s.Can(capability) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol " + GetRole(c) + " no tiene permiso para esta acción"})
	}
}

// GetRole devuelve el rol guardado por RequireAuth.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
