package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
)

var _ repository.KeyValueStore = (*File)(nil)

// File persiste todas las claves en un único archivo JSON. Cada escritura reescribe el
// archivo completo vía temporal + rename, así un corte a mitad nunca deja JSON truncado.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFile carga path si existe. Un archivo vacío o inexistente equivale a un almacenamiento vacío.
// Un archivo ilegible como JSON se aparta a <path>.corrupt y se arranca vacío.
func OpenFile(path string, log zerolog.Logger) (*File, error) {
	f := &File{path: path, data: make(map[string]string)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("storage: leer %s: %w", path, err)
	}
	if len(raw) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(raw, &f.data); err != nil {
		f.data = make(map[string]string)
		aside := path + ".corrupt"
		if rerr := os.Rename(path, aside); rerr != nil {
			log.Error().Err(err).AnErr("rename", rerr).Str("path", path).Msg("almacenamiento local corrupto, se ignora")
			return f, nil
		}
		log.Error().Err(err).Str("path", path).Str("moved_to", aside).Msg("almacenamiento local corrupto, se arranca vacío")
		return f, nil
	}
	if f.data == nil {
		f.data = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.data[key]
	f.data[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.data[key]
	if !had {
		return nil
	}
	delete(f.data, key)
	if err := f.flush(); err != nil {
		f.data[key] = prev
		return err
	}
	return nil
}

// flush se llama con mu tomado.
func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: serializar: %w", err)
	}
	temp := f.path + ".tmp"
	if err := os.WriteFile(temp, raw, 0o600); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", temp, err)
	}
	if err := os.Rename(temp, f.path); err != nil {
		return fmt.Errorf("storage: reemplazar %s: %w", f.path, err)
	}
	return nil
}
