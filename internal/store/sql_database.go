package store

import (
	"database/sql"

	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
