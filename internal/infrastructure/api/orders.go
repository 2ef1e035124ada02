package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService wrapper de /api/orders y /api/admin/orders.
type OrderService struct {
	c *Client
}

// NewOrderService construye el wrapper.
func NewOrderService(c *Client) *OrderService {
	return &OrderService{c: c}
}

// Create POST /api/orders.
func (s *OrderService) Create(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	var out dto.OrderResponse
	if err := s.c.doJSON(ctx, http.MethodPost, "/api/orders", nil, in, &out); err != nil {
		return nil, err
	}
	return toOrder(&out.Order), nil
}

// Track GET /api/orders/track/:orderNumber.
func (s *OrderService) Track(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var out dto.OrderEnvelope
	path := "/api/orders/track/" + url.PathEscape(orderNumber)
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return toOrder(&out.Order), nil
}

// ByEmail GET /api/orders/email/:email.
func (s *OrderService) ByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	var out dto.OrdersEnvelope
	path := "/api/orders/email/" + url.PathEscape(email)
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return toOrders(out.Orders), nil
}

// List GET /api/admin/orders?page=&limit=.
func (s *OrderService) List(ctx context.Context, page dto.PageRequest) ([]*entity.Order, *dto.Pagination, error) {
	page.DefaultPage()
	q := url.Values{}
	q.Set("page", strconv.Itoa(page.Page))
	q.Set("limit", strconv.Itoa(page.Limit))
	var out dto.OrdersEnvelope
	if err := s.c.doJSON(ctx, http.MethodGet, "/api/admin/orders", q, nil, &out); err != nil {
		return nil, nil, err
	}
	return toOrders(out.Orders), out.Pagination, nil
}

// UpdateStatus PUT /api/admin/orders/:id/status.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) (*entity.Order, error) {
	var out dto.OrderEnvelope
	in := dto.UpdateOrderStatusRequest{Status: string(status)}
	if err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", id), nil, in, &out); err != nil {
		return nil, err
	}
	return toOrder(&out.Order), nil
}
