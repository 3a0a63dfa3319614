package database

import (
	"fmt"
	"log/slog"
)

const (
	TypeMemory = "memory"
	TypeSQLite = "sqlite"
)

func NewDatabase(databaseType, connectionString string) (DatabaseService, error) {
	switch databaseType {
	case "", TypeMemory:
		return NewMemoryDatabase(), nil
	case TypeSQLite:
		database, err := NewSQLiteDatabase(connectionString)
		if err != nil {
			return nil, err
		}
		slog.Debug("initializing database schema (ensuring tables exist)")
		if err = database.CreateDatabase(); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to create database: %w", err)
		}
		return database, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", databaseType)
	}
}
