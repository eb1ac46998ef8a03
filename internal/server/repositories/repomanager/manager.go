package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/diagramkeeper/internal/dbx"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/repositories/counters"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/repositories/files"
)

// RepositoryManager vends repositories bound to a *sql.DB or an open *sql.Tx
// and owns the schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Files(db dbx.DBTX) files.Repository
	Counters(db dbx.DBTX) counters.Repository
}
