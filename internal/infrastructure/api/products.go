package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

var _ ports.ProductService = (*ProductService)(nil)

// ProductService wrapper de /api/products y /api/admin/products.
type ProductService struct {
	c *Client
}

// NewProductService construye el wrapper.
func NewProductService(c *Client) *ProductService {
	return &ProductService{c: c}
}

// List GET /api/products[?category=&search=].
func (s *ProductService) List(ctx context.Context, category, search string) ([]*entity.Product, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("search", search)
	}
	var out []dto.ProductResponse
	if err := s.c.doJSON(ctx, http.MethodGet, "/api/products", q, nil, &out); err != nil {
		return nil, err
	}
	products := make([]*entity.Product, 0, len(out))
	for i := range out {
		products = append(products, toProduct(&out[i]))
	}
	return products, nil
}

// Get GET /api/products/:id.
func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return toProduct(&out), nil
}

// Create POST /api/admin/products.
func (s *ProductService) Create(ctx context.Context, in dto.ProductRequest) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := s.c.doJSON(ctx, http.MethodPost, "/api/admin/products", nil, in, &out); err != nil {
		return nil, err
	}
	return toProduct(&out), nil
}

// Update PUT /api/admin/products/:id.
func (s *ProductService) Update(ctx context.Context, id uint, in dto.UpdateProductRequest) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/products/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return toProduct(&out), nil
}

// Delete DELETE /api/admin/products/:id.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", id), nil, nil, nil)
}
