package guard_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/guard"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/application/session"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
	"github.com/jhoicas/storefront-client/internal/infrastructure/storage"
)

type fakeAuth struct {
	profile      *entity.AdminUser
	profileErr   error
	profileCalls int
}

func (f *fakeAuth) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, domain.ErrUnexpected
}
func (f *fakeAuth) Logout(context.Context) error { return nil }
func (f *fakeAuth) Profile(context.Context) (*entity.AdminUser, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}
func (f *fakeAuth) Stats(context.Context) (*dto.StatsDTO, error) { return nil, nil }

func setup(t *testing.T, auth *fakeAuth, token string) (*guard.Guard, repository.KeyValueStore) {
	t.Helper()
	kv := storage.NewMemory()
	if token != "" {
		require.NoError(t, kv.Set(context.Background(), repository.KeyAdminToken, token))
	}
	s := session.NewStore(auth, session.NewCredentialStore(kv), zerolog.Nop())
	return guard.New(s, zerolog.Nop()), kv
}

func TestCheck_SinCredencialRedirigeConservandoDestino(t *testing.T) {
	g, _ := setup(t, &fakeAuth{}, "")
	d := g.Check(context.Background(), guard.Route{Path: "/admin/orders?page=2", RequiresAuth: true})
	assert.False(t, d.Allow)
	assert.Equal(t, "/admin/login?redirect=%2Fadmin%2Forders%3Fpage%3D2", d.Redirect)
}

func TestCheck_CredencialValidaDejaPasar(t *testing.T) {
	auth := &fakeAuth{profile: &entity.AdminUser{ID: 1, Role: entity.RoleSuperAdmin}}
	g, _ := setup(t, auth, "opaco")

	for i := 0; i < 3; i++ {
		d := g.Check(context.Background(), guard.Route{Path: "/admin", RequiresAuth: true})
		assert.True(t, d.Allow)
		assert.Empty(t, d.Redirect)
	}
	assert.Equal(t, 1, auth.profileCalls, "la identidad cargada no se vuelve a pedir")
}

func TestCheck_InicializacionFallidaDescartaCredencial(t *testing.T) {
	auth := &fakeAuth{profileErr: &domain.RemoteError{Status: 500}}
	g, kv := setup(t, auth, "opaco")

	d := g.Check(context.Background(), guard.Route{Path: "/admin/products", RequiresAuth: true})
	assert.False(t, d.Allow)
	assert.Equal(t, guard.LoginURL("/admin/products"), d.Redirect)

	_, err := kv.Get(context.Background(), repository.KeyAdminToken)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheck_RutaPublicaSiemprePasa(t *testing.T) {
	g, _ := setup(t, &fakeAuth{}, "")
	assert.True(t, g.Check(context.Background(), guard.Route{Path: "/products"}).Allow)
}

func TestSafeReturn(t *testing.T) {
	assert.Equal(t, "/admin/orders", guard.SafeReturn("/admin/orders", "/admin"))
	assert.Equal(t, "/admin", guard.SafeReturn("https://evil.test", "/admin"))
	assert.Equal(t, "/admin", guard.SafeReturn("//evil.test", "/admin"))
	assert.Equal(t, "/admin", guard.SafeReturn("", "/admin"))
}
