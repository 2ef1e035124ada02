package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
)

var _ ports.UploadService = (*UploadService)(nil)

// UploadService wrapper de /api/admin/upload/image. Usa el cliente con timeout extendido.
type UploadService struct {
	c *Client
}

// NewUploadService construye el wrapper.
func NewUploadService(c *Client) *UploadService {
	return &UploadService{c: c}
}

// UploadImage envía el archivo en el campo multipart "image" y devuelve la URL pública.
func (s *UploadService) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("api: crear multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("api: leer imagen: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("api: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+"/api/admin/upload/image", &buf)
	if err != nil {
		return "", fmt.Errorf("api: crear request de subida: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var out dto.UploadImageResponse
	if err := s.c.send(ctx, s.c.upload, req, &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

// DeleteImage DELETE /api/admin/upload/image con {"image_url": ...} en el cuerpo.
func (s *UploadService) DeleteImage(ctx context.Context, imageURL string) error {
	in := dto.DeleteImageRequest{ImageURL: imageURL}
	return s.c.doJSON(ctx, http.MethodDelete, "/api/admin/upload/image", nil, in, nil)
}
