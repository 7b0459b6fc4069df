package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/project-submissions/config"
	"github.com/GoSim-25-26J-441/project-submissions/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/repository"
)

// OpenStore builds the configured project store. The returned close func
// releases any connection the store holds.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := repository.NewFileStore(cfg.Storage.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return repository.NewRedisStore(client, cfg.Redis.Key), client.Close, nil

	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewPostgresStore(db, cfg.Database.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Storage.Backend)
}
