package counters

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/dbx"
)

// PostgresRepository keeps counters in the file_counters table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Next upserts the tenant row and increments it in a single statement, so
// concurrent callers are serialized by the row lock and never observe the
// same value.
func (r *PostgresRepository) Next(ctx context.Context, tenantID string) (int64, error) {
	query :=
		`INSERT INTO file_counters (tenant_id, current_counter)
		 VALUES ($1, 1)
		 ON CONFLICT (tenant_id)
		 DO UPDATE SET current_counter = file_counters.current_counter + 1
		 RETURNING current_counter
		 `

	var counter int64
	if err := r.db.QueryRowContext(ctx, query, tenantID).Scan(&counter); err != nil {
		return 0, fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}

	return counter, nil
}
