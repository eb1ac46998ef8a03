// Package services contains server-side business logic: the upload
// orchestrator, metadata reconciliation, version history and the generation
// flow that ties rendering to storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/dbx"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/repositories/repomanager"
)

// Incoming is what a write contributes to a metadata record.
type Incoming struct {
	FileName    string
	Kind        models.DiagramKind
	ContentType string
	Attributes  map[string]any
}

// Catalog is the metadata side of a logical file.
type Catalog interface {
	// Reconcile creates the record on first write and refreshes it afterwards.
	Reconcile(ctx context.Context, tenantID, fileID string, in Incoming) (*models.File, error)
	// Touch refreshes updatedAt only. Returns common.ErrNotFound for a missing record.
	Touch(ctx context.Context, tenantID, fileID string) (*models.File, error)
	Get(ctx context.Context, tenantID, fileID string) (*models.File, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error)
}

// PostgresCatalog reconciles metadata records inside one transaction per write.
//
// Create vs update is decided by an explicit existence check under a row lock.
// Concurrent first writers race on INSERT ... ON CONFLICT DO NOTHING; the loser
// takes the update path, so createdAt is written exactly once.
type PostgresCatalog struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewPostgresCatalog(db *sql.DB, rm repomanager.RepositoryManager) *PostgresCatalog {
	return &PostgresCatalog{
		db:          db,
		repomanager: rm,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (c *PostgresCatalog) Reconcile(ctx context.Context, tenantID, fileID string, in Incoming) (*models.File, error) {
	var rec *models.File
	now := c.now()

	err := dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := c.repomanager.Files(tx)

		_, err := repo.GetForUpdate(ctx, tenantID, fileID)
		switch {
		case err == nil:
			rec, err = repo.Touch(ctx, tenantID, fileID, in.FileName, in.ContentType, in.Attributes, now)
			return err
		case !errors.Is(err, common.ErrNotFound):
			return err
		}

		rec = &models.File{
			TenantID:    tenantID,
			FileID:      fileID,
			FileName:    in.FileName,
			DiagramKind: in.Kind,
			ContentType: in.ContentType,
			StorageKey:  models.StorageKey(tenantID, fileID),
			Attributes:  in.Attributes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		inserted, err := repo.Insert(ctx, rec)
		if err != nil || inserted {
			return err
		}

		// another writer created the record after our check
		rec, err = repo.Touch(ctx, tenantID, fileID, in.FileName, in.ContentType, in.Attributes, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile %s/%s: %w", tenantID, fileID, storeErr(err))
	}
	return rec, nil
}

func (c *PostgresCatalog) Touch(ctx context.Context, tenantID, fileID string) (*models.File, error) {
	rec, err := c.repomanager.Files(c.db).Touch(ctx, tenantID, fileID, "", "", nil, c.now())
	if err != nil {
		return nil, fmt.Errorf("touch %s/%s: %w", tenantID, fileID, err)
	}
	return rec, nil
}

func (c *PostgresCatalog) Get(ctx context.Context, tenantID, fileID string) (*models.File, error) {
	return c.repomanager.Files(c.db).Get(ctx, tenantID, fileID)
}

func (c *PostgresCatalog) List(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error) {
	return c.repomanager.Files(c.db).ListByTenant(ctx, tenantID, limit, offset)
}

// storeErr classifies untyped infrastructure errors (begin, commit) as
// common.ErrStoreUnavailable.
func storeErr(err error) error {
	for _, known := range []error{
		common.ErrStoreUnavailable, common.ErrValidation, common.ErrNotFound,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
}
