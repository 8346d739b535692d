package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"university-assistant/internal/intake/repository"
	pkgLog "university-assistant/pkg/log"
)

const driverName = "sqlite"

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger

	mu     sync.Mutex
	tables map[string]bool
}

// Open opens (or creates) the SQLite database file at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Single writer connection.
	db.SetMaxOpenConns(1)
	return db, nil
}

// New creates a SQLite-backed RecordRepository. Tables are created on first insert.
func New(db *sql.DB, l pkgLog.Logger) repository.RecordRepository {
	if db == nil {
		panic("intake/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, tables: make(map[string]bool)}
}

func (r *implRepository) logPrefix(method string) string {
	return fmt.Sprintf("internal.intake.repository.sqlite.%s", method)
}
