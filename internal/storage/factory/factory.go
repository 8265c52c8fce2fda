package factory

import (
	"context"
	"fmt"

	"github.com/corporoom/taskhub/internal/storage"
	"github.com/corporoom/taskhub/internal/storage/in_mem"
	"github.com/corporoom/taskhub/internal/storage/pg"
)

// NewStores creates every aggregate store on the configured backend
func NewStores(ctx context.Context, cfg *StorageConfig) (*storage.Stores, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return storage.NewStores(
			pg.NewUserStore(pool),
			pg.NewCompanyStore(pool),
			pg.NewProjectStore(pool),
			pg.NewTaskStore(pool),
			pool.Close,
		).WithPing(pool.Ping), nil

	case storage.InMem:
		return in_mem.NewStore().Stores(), nil

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
