// Package admin agrupa las operaciones del back office: métricas, gestión de órdenes e imágenes.
// Cada operación verifica la capacidad del rol antes de llamar al backend.
package admin

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// Authorizer lo que el back office usa de la sesión (lo implementa session.Store).
type Authorizer interface {
	IsAuthenticated() bool
	Can(c entity.Capability) bool
}

var allowedImageExt = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// UseCase casos de uso del back office.
type UseCase struct {
	session Authorizer
	auth    ports.AuthService
	orders  ports.OrderService
	uploads ports.UploadService
	log     zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(session Authorizer, auth ports.AuthService, orders ports.OrderService, uploads ports.UploadService, log zerolog.Logger) *UseCase {
	return &UseCase{session: session, auth: auth, orders: orders, uploads: uploads, log: log}
}

// Require devuelve ErrUnauthorized sin sesión y ErrForbidden si el rol no tiene la capacidad.
func (uc *UseCase) Require(c entity.Capability) error {
	if !uc.session.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	if !uc.session.Can(c) {
		return fmt.Errorf("admin: falta capacidad %s: %w", c, domain.ErrForbidden)
	}
	return nil
}

// Stats métricas del dashboard; cualquier administrador autenticado puede verlas.
func (uc *UseCase) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	if !uc.session.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	return uc.auth.Stats(ctx)
}

// Orders listado paginado.
func (uc *UseCase) Orders(ctx context.Context, page dto.PageRequest) ([]*entity.Order, *dto.Pagination, error) {
	if err := uc.Require(entity.CapViewOrders); err != nil {
		return nil, nil, err
	}
	page.DefaultPage()
	return uc.orders.List(ctx, page)
}

// UpdateOrderStatus cambia el estado; el estado debe ser uno de los conocidos.
func (uc *UseCase) UpdateOrderStatus(ctx context.Context, id uint, status entity.OrderStatus) (*entity.Order, error) {
	if err := uc.Require(entity.CapManageOrders); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("admin: estado %q: %w", status, domain.ErrInvalidInput)
	}
	order, err := uc.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Uint("order_id", id).Str("status", string(status)).Msg("estado de orden actualizado")
	return order, nil
}

// UploadImage sube una imagen de producto y devuelve su URL pública.
func (uc *UseCase) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := uc.Require(entity.CapManageProducts); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExt[ext]; !ok {
		return "", fmt.Errorf("admin: extensión %q no permitida: %w", ext, domain.ErrInvalidInput)
	}
	return uc.uploads.UploadImage(ctx, filepath.Base(filename), content)
}

// DeleteImage borra una imagen subida.
func (uc *UseCase) DeleteImage(ctx context.Context, imageURL string) error {
	if err := uc.Require(entity.CapManageProducts); err != nil {
		return err
	}
	if err := dto.Validate(dto.DeleteImageRequest{ImageURL: imageURL}); err != nil {
		return err
	}
	return uc.uploads.DeleteImage(ctx, imageURL)
}
