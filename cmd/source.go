package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/RyanHill92/housing/internal/config"
	"github.com/RyanHill92/housing/internal/housing"
	"github.com/RyanHill92/housing/internal/records"
)

const connectTimeout = 30 * time.Second

// readRecords fetches house records from the configured source.
func readRecords(ctx context.Context, cfg config.Config, path string) ([]housing.House, error) {
	if cfg.Source == config.SourceFile {
		if path == "" {
			return nil, errNoLoadFile
		}
		return records.ReadFile(path)
	}
	if path != "" {
		return nil, fmt.Errorf("load file %s given with source %s", path, cfg.Source)
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeDB(db)

	store, err := records.NewSQLStore(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("error initializing store: %w", err)
	}
	defer store.Close()

	return store.Houses(ctx)
}

// openDB connects to the configured SQL source.
func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	var driver, dsn string
	switch cfg.Source {
	case config.SourceSQLite:
		driver, dsn = records.DriverSQLite, cfg.SQLite.Path
	case config.SourceMySQL:
		driver = records.DriverMySQL
		dsn = records.MySQLDSN(cfg.MySQL.User, cfg.MySQL.Password, cfg.MySQL.Host, cfg.MySQL.Name)
	default:
		return nil, fmt.Errorf("source %s is not a database", cfg.Source)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return records.OpenDB(ctx, driver, dsn)
}

func closeDB(db *sql.DB) {
	log.Println("main: closing database")
	if err := db.Close(); err != nil {
		log.Printf("main: failed to close database: %s", err)
	}
}

// importRecords stores houses in the configured database, skipping ids that
// are already stored.
func importRecords(ctx context.Context, cfg config.Config, houses []housing.House) (int, error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer closeDB(db)

	if err := records.CreateSchema(ctx, db); err != nil {
		return 0, err
	}
	store, err := records.NewSQLStore(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("error initializing store: %w", err)
	}
	defer store.Close()

	imported := 0
	for _, h := range houses {
		err := store.AddHouse(ctx, h)
		if errors.Is(err, records.ErrDuplicateHouse) {
			log.Printf("main: skipping %v", err)
			continue
		}
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
