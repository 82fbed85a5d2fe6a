package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// NewStorage opens the key-value backend selected by STORAGE_DRIVER.
func NewStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "postgres":
		gdb, err := storage.OpenPostgres(cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		st, err := storage.NewGormStorage(gdb)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", zap.String("driver", "postgres"))
		return st, nil

	case "redis":
		st, err := storage.NewRedisStorage(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", zap.String("driver", "redis"), zap.String("addr", cfg.RedisAddr))
		return st, nil

	case "memory":
		log.Warn("storage ready: in-memory, state is lost on restart")
		return storage.NewMemoryStorage(), nil
	}

	return nil, fmt.Errorf("db: unsupported storage driver %q", cfg.StorageDriver)
}
