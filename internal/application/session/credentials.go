package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
)

// CredentialStore único slot de credencial del proceso, persistido bajo repository.KeyAdminToken.
// Implementa api.Credentials: el adaptador HTTP lo lee en cada petición y lo borra ante un 401.
type CredentialStore struct {
	kv repository.KeyValueStore
}

// NewCredentialStore construye el slot sobre el almacenamiento local.
func NewCredentialStore(kv repository.KeyValueStore) *CredentialStore {
	return &CredentialStore{kv: kv}
}

// Token devuelve la credencial guardada o "" si no hay.
func (c *CredentialStore) Token(ctx context.Context) (string, error) {
	v, err := c.kv.Get(ctx, repository.KeyAdminToken)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: leer credencial: %w", err)
	}
	return strings.TrimSpace(v), nil
}

// Set reemplaza la credencial.
func (c *CredentialStore) Set(ctx context.Context, token string) error {
	if err := c.kv.Set(ctx, repository.KeyAdminToken, token); err != nil {
		return fmt.Errorf("session: guardar credencial: %w", err)
	}
	return nil
}

// Clear elimina la credencial; borrar un slot vacío no es error.
func (c *CredentialStore) Clear(ctx context.Context) error {
	if err := c.kv.Delete(ctx, repository.KeyAdminToken); err != nil {
		return fmt.Errorf("session: borrar credencial: %w", err)
	}
	return nil
}

// Has indica si hay una credencial legible guardada.
func (c *CredentialStore) Has(ctx context.Context) bool {
	token, err := c.Token(ctx)
	return err == nil && token != ""
}
