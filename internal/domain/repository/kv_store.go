package repository

import "context"

// KeyValueStore define el puerto de persistencia local del cliente (DIP).
// Es el equivalente al localStorage del navegador: claves cortas, valores de texto opacos.
// Get devuelve domain.ErrNotFound si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Claves que usa el cliente.
const (
	KeyCart       = "bjj_store_cart"
	KeyAdminToken = "admin_token"
)
