package external

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"weathrly.app/catalog"
	"weathrly.app/internal/adapters/database"
	"weathrly.app/internal/config"
	"weathrly.app/internal/ports"
	"weathrly.app/pkg/errors"
)

// CatalogFactory builds the configured fallback catalog backend and seeds it
// from the embedded dataset
type CatalogFactory struct {
	logger ports.Logger
}

func NewCatalogFactory(logger ports.Logger) *CatalogFactory {
	return &CatalogFactory{logger: logger}
}

// CreateCatalog returns the catalog for cfg.Type. db is only used by the database backend.
func (f *CatalogFactory) CreateCatalog(ctx context.Context, cfg *config.CatalogConfig, db *gorm.DB) (ports.FallbackCatalog, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("catalog config cannot be nil", nil)
	}

	entries, err := catalog.Entries()
	if err != nil {
		return nil, errors.NewConfigurationError("embedded fallback catalog is invalid", err)
	}

	switch cfg.Type {
	case config.CatalogTypeMemory:
		return NewMemoryCatalog(entries), nil
	case config.CatalogTypeDatabase:
		if db == nil {
			return nil, errors.NewConfigurationError("database catalog requires a database connection", nil)
		}
		repo := database.NewFallbackCatalogRepositoryAdapter(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}
		added, err := repo.Seed(ctx, entries)
		if err != nil {
			return nil, err
		}
		f.logger.Info("Fallback catalog seeded", ports.F("backend", repo.Backend()), ports.F("added", added))
		return repo, nil
	case config.CatalogTypeRedis:
		redisCatalog, err := NewRedisCatalog(&cfg.Redis, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		added, err := redisCatalog.Seed(ctx, entries)
		if err != nil {
			_ = redisCatalog.Close()
			return nil, err
		}
		f.logger.Info("Fallback catalog seeded", ports.F("backend", redisCatalog.Backend()), ports.F("added", added))
		return redisCatalog, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported catalog type: %s", cfg.Type.String()), nil)
	}
}
