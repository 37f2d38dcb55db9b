// Package repomanager wires dialect-specific repository implementations and
// migrations behind a single interface, selected from the database DSN.
package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mkravets/tasktrack/internal/dbx"
	"github.com/mkravets/tasktrack/internal/server/repositories/todos"
	"github.com/mkravets/tasktrack/internal/server/repositories/users"
)

type RepositoryManager interface {
	// DriverName returns the database/sql driver to open connections with.
	DriverName() string
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
}

// FromDSN picks the repository manager matching the DSN: postgres:// (or
// postgresql://) selects PostgreSQL, anything else is treated as a SQLite
// file path, mirroring the development default.
func FromDSN(dsn string) RepositoryManager {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresRepositoryManager()
	}
	return NewSQLiteRepositoryManager()
}
