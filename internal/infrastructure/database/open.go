package database

import (
	"context"
	"fmt"
	"log"

	"sitedesk/internal/config"
	"sitedesk/internal/ports/output"
)

// Open returns the store selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (output.KVStore, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ Stockage SQLite ouvert (%s).", cfg.SQLitePath)
		return store, nil
	case config.DriverPostgres:
		if err := RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		store, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ PostgreSQL connecté (%s).", store.pool.Config().ConnConfig.Host)
		return store, nil
	case config.DriverRedis:
		store, err := NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ Redis connecté (%s).", cfg.RedisAddr)
		return store, nil
	case config.DriverMemory:
		log.Println("⚠️ Stockage en mémoire: les données seront perdues à l'arrêt.")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
