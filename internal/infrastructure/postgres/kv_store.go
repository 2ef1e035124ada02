package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// Querier abstrae pool o tx para las consultas del store.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// schema tabla única; namespace permite compartir la base entre varias instalaciones del cliente.
const schema = `
CREATE TABLE IF NOT EXISTS client_state (
	namespace  TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (namespace, key)
)`

// KVStore implementación de repository.KeyValueStore sobre la tabla client_state.
type KVStore struct {
	q         Querier
	namespace string
}

// NewKVStore construye el adaptador. Pasar pool o tx.
func NewKVStore(q Querier, namespace string) *KVStore {
	return &KVStore{q: q, namespace: namespace}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear tabla client_state: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.q.QueryRow(ctx,
		`SELECT value FROM client_state WHERE namespace = $1 AND key = $2`,
		s.namespace, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO client_state (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		s.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM client_state WHERE namespace = $1 AND key = $2`, s.namespace, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
