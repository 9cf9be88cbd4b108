package store

import (
	"database/sql"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/migrations"
)

// DB wraps a sql.DB handle together with the error classifier for its driver
// and a logger. Server (PostgreSQL) and client (SQLite) connections share
// this type; the classifier is nil for SQLite.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateServer applies the embedded PostgreSQL migrations.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// MigrateClient applies the embedded SQLite migrations.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}
