package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/config"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/postgres"
)

const enginePostgres = "postgres"

// openStore opens the configured key/value engine.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (kv.Store, error) {
	engine := strings.ToLower(strings.TrimSpace(cfg.Storage.Engine))

	if engine == enginePostgres {
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		store, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init postgres store: %w", err)
		}

		logger.Info("storage opened", zap.String("engine", enginePostgres))
		return store, nil
	}

	store, err := kv.New(engine, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	logger.Info("storage opened",
		zap.String("engine", engine),
		zap.String("path", cfg.Storage.Path),
	)
	return store, nil
}
