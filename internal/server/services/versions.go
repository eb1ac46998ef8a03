package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// VersionService lists and restores the blob versions of a logical file.
type VersionService struct {
	blobs        blobstore.Store
	catalog      Catalog
	metrics      *metrics.Metrics
	log          logging.Logger
	pageSize     int
	storeTimeout time.Duration
}

func NewVersionService(blobs blobstore.Store, catalog Catalog, m *metrics.Metrics, log logging.Logger, pageSize int, storeTimeout time.Duration) *VersionService {
	return &VersionService{
		blobs:        blobs,
		catalog:      catalog,
		metrics:      m,
		log:          log.With("module", "versions"),
		pageSize:     pageSize,
		storeTimeout: storeTimeout,
	}
}

// ListVersions returns one page of versions in store order (newest first).
// A file without versions yields an empty page.
func (s *VersionService) ListVersions(ctx context.Context, tenantID, fileID, pageToken string) (*models.VersionPage, error) {
	if err := validateIDs(tenantID, fileID, true); err != nil {
		return nil, err
	}
	key := models.StorageKey(tenantID, fileID)

	var page *models.VersionPage
	err := callStore(ctx, s.metrics, s.storeTimeout, "blob", "list_versions", func(ctx context.Context) error {
		var err error
		page, err = s.blobs.ListVersions(ctx, key, pageToken, s.pageSize)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list versions %s: %w", key, err)
	}
	return page, nil
}

// Restore makes versionID the content of a new latest version. History is
// kept: versionID itself stays listed and unchanged.
func (s *VersionService) Restore(ctx context.Context, tenantID, fileID, versionID string) (string, error) {
	newVersion, err := s.restore(ctx, tenantID, fileID, versionID)
	s.metrics.Restore(err)
	return newVersion, err
}

func (s *VersionService) restore(ctx context.Context, tenantID, fileID, versionID string) (string, error) {
	if err := validateIDs(tenantID, fileID, true); err != nil {
		return "", err
	}
	if versionID == "" {
		return "", fmt.Errorf("%w: versionId is required", common.ErrValidation)
	}
	key := models.StorageKey(tenantID, fileID)

	var newVersion string
	err := callStore(ctx, s.metrics, s.storeTimeout, "blob", "restore", func(ctx context.Context) error {
		var err error
		newVersion, err = s.blobs.Restore(ctx, key, versionID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("restore %s@%s: %w", key, versionID, err)
	}

	// the content changed, so the record's updatedAt follows; a failure here
	// leaves a stale timestamp only
	err = callStore(ctx, s.metrics, s.storeTimeout, "metadata", "touch", func(ctx context.Context) error {
		_, err := s.catalog.Touch(ctx, tenantID, fileID)
		return err
	})
	if err != nil {
		level := s.log.Warn
		if errors.Is(err, common.ErrNotFound) {
			level = s.log.Info
		}
		level(ctx, "metadata not refreshed after restore", "tenant_id", tenantID, "file_id", fileID, "error", err)
	}

	s.log.Info(ctx, "version restored", "tenant_id", tenantID, "file_id", fileID,
		"from_version", versionID, "version_id", newVersion)
	return newVersion, nil
}
