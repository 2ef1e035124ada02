// Package api implementa el adaptador HTTP hacia el backend REST de la tienda
// y los wrappers tipados de cada grupo de endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/domain"
)

const (
	// LoginPath vista de login del back office.
	LoginPath = "/admin/login"
	// AdminPrefix prefijo de las vistas de administración.
	AdminPrefix = "/admin"

	maxErrorBody    = 64 * 1024
	maxResponseBody = 8 * 1024 * 1024
)

// Credentials fuente de la credencial bearer. La implementa session.Store.
type Credentials interface {
	// Token devuelve la credencial guardada o "" si no hay ninguna.
	Token(ctx context.Context) (string, error)
	// Clear elimina la credencial guardada.
	Clear(ctx context.Context) error
}

// Config parámetros del transporte.
type Config struct {
	BaseURL       string
	Timeout       time.Duration // peticiones normales (10 s por defecto)
	UploadTimeout time.Duration // multipart (30 s por defecto)
}

// Client único transporte configurado hacia el backend: inyecta el bearer, etiqueta cada
// petición con X-Request-ID y ante cualquier 401 borra la credencial guardada.
type Client struct {
	baseURL string
	http    *http.Client
	upload  *http.Client
	creds   Credentials
	log     zerolog.Logger
}

// NewClient construye el adaptador. creds puede ser nil (sin autenticación).
func NewClient(cfg Config, creds Credentials, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = 30 * time.Second
	}
	transport := otelhttp.NewTransport(http.DefaultTransport)
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout, Transport: transport},
		upload:  &http.Client{Timeout: cfg.UploadTimeout, Transport: transport},
		creds:   creds,
		log:     log,
	}
}

// UseCredentials reemplaza la fuente de credencial. Se llama durante el arranque, antes de
// servir peticiones, porque el contenedor de sesión necesita el cliente para construirse.
func (c *Client) UseCredentials(creds Credentials) {
	c.creds = creds
}

// LoginRedirect aplica la regla de redirección tras un 401: solo las vistas bajo /admin,
// y nunca la propia vista de login, se envían al login.
func LoginRedirect(currentPath string) (string, bool) {
	if !strings.HasPrefix(currentPath, AdminPrefix) || currentPath == LoginPath {
		return "", false
	}
	return LoginPath, true
}

// doJSON envía body como JSON (si no es nil) y decodifica la respuesta en out (si no es nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("api: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.send(ctx, c.http, req, out)
}

// send aplica el contrato del transporte y traduce la respuesta.
func (c *Client) send(ctx context.Context, hc *http.Client, req *http.Request, out any) error {
	method, path := req.Method, req.URL.Path

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			c.log.Warn().Err(err).Msg("no se pudo leer la credencial, se envía sin Authorization")
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s: timeout o cancelación: %w: %w", method, path, domain.ErrNetwork, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w: %v", method, path, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("backend")

	if resp.StatusCode >= http.StatusBadRequest {
		remote := decodeRemoteError(resp)
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized(ctx, method, path)
		}
		return fmt.Errorf("api: %s %s: %w", method, path, remote)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return fmt.Errorf("api: %s %s: deserializar respuesta: %w: %v", method, path, domain.ErrUnexpected, err)
	}
	return nil
}

// handleUnauthorized borra la credencial: la sesión se cura sola en la siguiente navegación.
func (c *Client) handleUnauthorized(ctx context.Context, method, path string) {
	c.log.Warn().Str("method", method).Str("path", path).Msg("backend respondió 401, se elimina la credencial")
	if c.creds == nil {
		return
	}
	if err := c.creds.Clear(ctx); err != nil {
		c.log.Error().Err(err).Msg("no se pudo eliminar la credencial")
	}
}

func decodeRemoteError(resp *http.Response) *domain.RemoteError {
	remote := &domain.RemoteError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return remote
	}
	var body dto.APIError
	if json.Unmarshal(raw, &body) == nil {
		remote.Message = body.Error
		remote.Details = body.Details
	}
	return remote
}
