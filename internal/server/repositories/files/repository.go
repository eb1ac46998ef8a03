// Package files implements the metadata store: one catalog row per
// (tenant, logical file).
package files

import (
	"context"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

type Repository interface {
	// Get returns the record or common.ErrNotFound.
	Get(ctx context.Context, tenantID, fileID string) (*models.File, error)
	// GetForUpdate is Get that also row-locks the record for the current transaction.
	GetForUpdate(ctx context.Context, tenantID, fileID string) (*models.File, error)
	// Insert writes a full record. It reports false, without error, when a
	// record for the same (tenant, file) already exists.
	Insert(ctx context.Context, file *models.File) (bool, error)
	// Touch refreshes updated_at (never moving it backwards), merges attrs and
	// replaces non-empty fileName / contentType. Returns common.ErrNotFound for a missing record.
	Touch(ctx context.Context, tenantID, fileID, fileName, contentType string, attrs map[string]any, now time.Time) (*models.File, error)
	// ListByTenant returns records ordered by most recent update.
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error)
}
