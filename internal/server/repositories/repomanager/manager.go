// Package repomanager wires concrete repositories to a database handle and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/anvydev/notekeeper/internal/dbx"
	"github.com/anvydev/notekeeper/internal/server/repositories/notes"
	"github.com/anvydev/notekeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
