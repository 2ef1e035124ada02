package storage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
)

var _ repository.KeyValueStore = (*Sealed)(nil)

const nonceSize = 24

// Sealed cifra con secretbox los valores de las claves indicadas antes de delegar en inner.
// El resto de claves pasa sin tocar. La clave simétrica es sha256(secret).
type Sealed struct {
	inner repository.KeyValueStore
	key   [32]byte
	keys  map[string]struct{}
}

// NewSealed sella las claves listadas (por ejemplo repository.KeyAdminToken).
func NewSealed(inner repository.KeyValueStore, secret string, keys ...string) *Sealed {
	s := &Sealed{inner: inner, key: sha256.Sum256([]byte(secret)), keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

func (s *Sealed) sealed(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *Sealed) Get(ctx context.Context, key string) (string, error) {
	v, err := s.inner.Get(ctx, key)
	if err != nil || !s.sealed(key) {
		return v, err
	}
	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("storage: valor sellado corrupto en %s: %w", key, domain.ErrInvalidInput)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", fmt.Errorf("storage: no se pudo abrir %s (¿cambió STORAGE_SECRET?): %w", key, domain.ErrInvalidInput)
	}
	return string(plain), nil
}

func (s *Sealed) Set(ctx context.Context, key, value string) error {
	if !s.sealed(key) {
		return s.inner.Set(ctx, key, value)
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("storage: generar nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(box))
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
