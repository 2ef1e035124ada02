package admin_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/application/admin"
	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

type roleSession struct{ role entity.Role }

func (s roleSession) IsAuthenticated() bool        { return s.role != "" }
func (s roleSession) Can(c entity.Capability) bool { return s.role.Can(c) }

type fakeBackend struct {
	lastPage   dto.PageRequest
	lastStatus entity.OrderStatus
	uploaded   string
	deleted    string
}

func (f *fakeBackend) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, nil
}
func (f *fakeBackend) Logout(context.Context) error { return nil }
func (f *fakeBackend) Profile(context.Context) (*entity.AdminUser, error) {
	return nil, nil
}
func (f *fakeBackend) Stats(context.Context) (*dto.StatsDTO, error) {
	return &dto.StatsDTO{TotalOrders: 3}, nil
}
func (f *fakeBackend) Create(context.Context, dto.CreateOrderRequest) (*entity.Order, error) {
	return nil, nil
}
func (f *fakeBackend) Track(context.Context, string) (*entity.Order, error) { return nil, nil }
func (f *fakeBackend) ByEmail(context.Context, string) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakeBackend) List(_ context.Context, p dto.PageRequest) ([]*entity.Order, *dto.Pagination, error) {
	f.lastPage = p
	return []*entity.Order{{ID: 1}}, &dto.Pagination{Page: p.Page, Limit: p.Limit, Total: 1, Pages: 1}, nil
}
func (f *fakeBackend) UpdateStatus(_ context.Context, id uint, s entity.OrderStatus) (*entity.Order, error) {
	f.lastStatus = s
	return &entity.Order{ID: id, Status: s}, nil
}
func (f *fakeBackend) UploadImage(_ context.Context, name string, r io.Reader) (string, error) {
	f.uploaded = name
	_, _ = io.Copy(io.Discard, r)
	return "https://cdn.test/" + name, nil
}
func (f *fakeBackend) DeleteImage(_ context.Context, url string) error {
	f.deleted = url
	return nil
}

func newUC(role entity.Role) (*admin.UseCase, *fakeBackend) {
	b := &fakeBackend{}
	return admin.NewUseCase(roleSession{role}, b, b, b, zerolog.Nop()), b
}

func TestOrders_ViewerPuedeListarConPaginaPorDefecto(t *testing.T) {
	uc, b := newUC(entity.RoleViewer)
	orders, page, err := uc.Orders(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, dto.PageRequest{Page: 1, Limit: 20}, b.lastPage)
	assert.Equal(t, int64(1), page.Total)
}

func TestUpdateOrderStatus_ViewerRecibeForbidden(t *testing.T) {
	uc, b := newUC(entity.RoleViewer)
	_, err := uc.UpdateOrderStatus(context.Background(), 1, entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, b.lastStatus)
}

func TestUpdateOrderStatus_EstadoInvalido(t *testing.T) {
	uc, _ := newUC(entity.RoleOrderManager)
	_, err := uc.UpdateOrderStatus(context.Background(), 1, "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	o, err := uc.UpdateOrderStatus(context.Background(), 1, entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, o.Status)
}

func TestSinSesion_Unauthorized(t *testing.T) {
	uc, _ := newUC("")
	_, err := uc.Stats(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, _, err = uc.Orders(context.Background(), dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUploadImage_ValidaExtensionYCapacidad(t *testing.T) {
	uc, b := newUC(entity.RoleInventory)
	_, err := uc.UploadImage(context.Background(), "script.sh", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	url, err := uc.UploadImage(context.Background(), "../../gi.PNG", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "gi.PNG", b.uploaded)
	assert.Equal(t, "https://cdn.test/gi.PNG", url)

	require.NoError(t, uc.DeleteImage(context.Background(), url))
	assert.Equal(t, url, b.deleted)

	viewer, _ := newUC(entity.RoleViewer)
	_, err = viewer.UploadImage(context.Background(), "gi.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
