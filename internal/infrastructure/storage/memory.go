// Package storage implementa los drivers del puerto repository.KeyValueStore:
// memoria, archivo JSON, redis y el decorador que sella valores sensibles.
// El driver postgres vive en infrastructure/postgres junto al pool.
package storage

import (
	"context"
	"sync"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
)

var _ repository.KeyValueStore = (*Memory)(nil)

// Memory almacenamiento volátil; se pierde al cerrar el proceso.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory crea un almacenamiento vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
