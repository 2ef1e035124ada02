package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
)

var _ ports.PaymentService = (*PaymentService)(nil)

// PaymentService wrapper de la pasarela simulada.
type PaymentService struct {
	c *Client
}

// NewPaymentService construye el wrapper.
func NewPaymentService(c *Client) *PaymentService {
	return &PaymentService{c: c}
}

// Process POST /api/payment/process.
func (s *PaymentService) Process(ctx context.Context, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	var out dto.PaymentResponse
	if err := s.c.doJSON(ctx, http.MethodPost, "/api/payment/process", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
