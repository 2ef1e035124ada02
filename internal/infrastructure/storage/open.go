package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/storefront-client/internal/domain/repository"
	"github.com/jhoicas/storefront-client/internal/infrastructure/postgres"
	"github.com/jhoicas/storefront-client/pkg/config"
)

// Open construye el driver indicado por STORAGE_DRIVER. Si STORAGE_SECRET está definido la
// credencial se guarda sellada. closeFn libera conexiones y nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.KeyValueStore, func(), error) {
	var (
		store   repository.KeyValueStore
		closeFn = func() {}
	)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store = NewMemory()
	case config.StorageFile:
		f, err := OpenFile(cfg.Storage.FilePath, log)
		if err != nil {
			return nil, closeFn, err
		}
		store = f
	case config.StorageRedis:
		r, err := OpenRedis(ctx, cfg.Redis.URL, cfg.Redis.Namespace)
		if err != nil {
			return nil, closeFn, err
		}
		store = r
		closeFn = func() { _ = r.Close() }
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, closeFn, fmt.Errorf("storage: %w", err)
		}
		kv := postgres.NewKVStore(pool, cfg.App.Name)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, closeFn, fmt.Errorf("storage: %w", err)
		}
		store = kv
		closeFn = pool.Close
	default:
		return nil, closeFn, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}

	if cfg.Storage.Secret != "" {
		store = NewSealed(store, cfg.Storage.Secret, repository.KeyAdminToken)
	} else if cfg.App.Env == "production" {
		log.Warn().Msg("STORAGE_SECRET vacío: la credencial se guarda en texto plano")
	}
	log.Info().Str("driver", cfg.Storage.Driver).Bool("sealed", cfg.Storage.Secret != "").Msg("almacenamiento local listo")
	return store, closeFn, nil
}
