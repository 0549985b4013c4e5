package cmd

import (
	"fmt"
	"log"

	"ticktock/config"
	"ticktock/database"
	"ticktock/repository"
	"ticktock/seed"
)

// openStore returns the configured store and a func releasing its connection.
func openStore(cfg *config.Config) (repository.Store, func(), error) {
	data, err := seed.Default()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Store {
	case config.StorePostgres:
		db, err := database.OpenPostgres(cfg.DatabaseURL, cfg.LogSQL, data)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repository.NewGormStore(db), closeFn, nil
	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath, data)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLStore(db), func() { db.Close() }, nil
	case config.StoreMemory:
		log.Printf("Using in-memory store; changes are lost on exit")
		return repository.NewMemoryStore(data), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
