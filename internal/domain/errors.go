package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrNetwork      = errors.New("error de red, revise su conexión")
	ErrUnexpected   = errors.New("error inesperado del servidor")
	ErrEmptyCart    = errors.New("el carrito está vacío")
	ErrInvalidCard  = errors.New("tarjeta inválida")
)

// RemoteError representa una respuesta de error del backend REST.
// Status es el código HTTP; Message es el campo "error" del cuerpo, pensado para mostrarse al usuario.
type RemoteError struct {
	Status  int
	Message string
	Details string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend respondió HTTP %d", e.Status)
	}
	return fmt.Sprintf("backend respondió HTTP %d: %s", e.Status, e.Message)
}

// Unwrap permite errors.Is(err, domain.ErrUnauthorized) y similares según el status.
func (e *RemoteError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusConflict:
		return ErrConflict
	case e.Status >= 400 && e.Status < 500:
		return ErrInvalidInput
	default:
		return ErrUnexpected
	}
}

// MessageOf devuelve el mensaje legible que envió el servidor o fallback si no hay ninguno.
func MessageOf(err error, fallback string) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}

// IsUnauthorized indica si err proviene de un 401 (credencial inválida o expirada).
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
