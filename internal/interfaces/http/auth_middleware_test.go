package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/application/guard"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	apphttp "github.com/jhoicas/storefront-client/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeSession sesión en memoria que cumple guard.Session y apphttp.Authorizer.
type fakeSession struct {
	credential bool
	role       entity.Role
	initErr    error
	inits      int
	discarded  int
}

func (f *fakeSession) HasCredential(context.Context) bool { return f.credential }
func (f *fakeSession) IsAuthenticated() bool              { return f.role != "" }
func (f *fakeSession) IsLoading() bool                    { return false }
func (f *fakeSession) Role() entity.Role                  { return f.role }
func (f *fakeSession) Can(c entity.Capability) bool       { return f.role.Can(c) }

func (f *fakeSession) InitializeAuth(context.Context) error {
	f.inits++
	if f.initErr != nil {
		return f.initErr
	}
	f.role = entity.RoleViewer
	return nil
}

func (f *fakeSession) Discard(context.Context) {
	f.discarded++
	f.credential = false
	f.role = ""
}

// buildTestApp app Fiber mínima con el guard y la autorización por capacidad delante
// de un handler que devuelve 200 si pasa los middlewares.
func buildTestApp(s *fakeSession, caps ...entity.Capability) *fiber.App {
	app := fiber.New()
	app.Get("/admin/protected",
		apphttp.RequireAuth(guard.New(s, zerolog.Nop()), s),
		apphttp.RequireCapability(s, caps...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAuth_SinCredencialRedirigeConDestino(t *testing.T) {
	s := &fakeSession{}
	resp := doRequest(t, buildTestApp(s, entity.CapViewOrders), "/admin/protected?tab=2")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login?redirect=%2Fadmin%2Fprotected%3Ftab%3D2", resp.Header.Get("Location"))
	assert.Zero(t, s.inits, "sin credencial no se intenta cargar el perfil")
}

func TestRequireAuth_CredencialGuardadaInicializaSesion(t *testing.T) {
	s := &fakeSession{credential: true}
	resp := doRequest(t, buildTestApp(s, entity.CapViewOrders), "/admin/protected")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, s.inits)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "viewer", body["role"])
}

func TestRequireAuth_FalloAlInicializarDescartaCredencial(t *testing.T) {
	s := &fakeSession{credential: true, initErr: domain.ErrUnauthorized}
	resp := doRequest(t, buildTestApp(s, entity.CapViewOrders), "/admin/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, 1, s.discarded)
	assert.False(t, s.credential)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireCapability
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireCapability_RolConCapacidad(t *testing.T) {
	s := &fakeSession{credential: true, role: entity.RoleInventory}
	resp := doRequest(t, buildTestApp(s, entity.CapManageProducts), "/admin/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireCapability_CualquieraDeLasIndicadas(t *testing.T) {
	s := &fakeSession{credential: true, role: entity.RoleOrderManager}
	resp := doRequest(t, buildTestApp(s, entity.CapViewProducts, entity.CapManageOrders), "/admin/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireCapability_RolSinCapacidadRetorna403(t *testing.T) {
	s := &fakeSession{credential: true, role: entity.RoleViewer}
	resp := doRequest(t, buildTestApp(s, entity.CapManageOrders), "/admin/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
	assert.Contains(t, string(body), "viewer")
}
