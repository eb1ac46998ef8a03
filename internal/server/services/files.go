package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Allocator mints fresh logical file ids for a tenant.
type Allocator interface {
	Allocate(ctx context.Context, tenantID string) (string, error)
}

type UploadRequest struct {
	TenantID string
	// FileID is optional; an empty value allocates a new logical file.
	FileID      string
	FileName    string
	Kind        models.DiagramKind
	Content     []byte
	ContentType string
	Metadata    map[string]any
}

type UploadResult struct {
	FileID     string
	StorageKey string
	VersionID  string
	File       *models.File
}

// PartialWriteError reports an upload whose blob version was stored but
// whose metadata record could not be written. FileID is final: repair with
// FileService.RetryMetadata or upload again under the same id.
type PartialWriteError struct {
	FileID     string
	StorageKey string
	VersionID  string
	Err        error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("%v: blob %s (version %s) stored, metadata not written: %v",
		common.ErrPartialWrite, e.StorageKey, e.VersionID, e.Err)
}

func (e *PartialWriteError) Unwrap() []error {
	return []error{common.ErrPartialWrite, e.Err}
}

type FileServiceOptions struct {
	// StoreTimeout bounds every single store call; 0 disables it.
	StoreTimeout time.Duration
	// RetryMaxElapsed bounds retries of blob and metadata writes; 0 disables retries.
	RetryMaxElapsed time.Duration
	PresignExpiry   time.Duration
}

// FileService is the upload orchestrator: it resolves the file id, writes the
// blob and then reconciles the metadata record.
//
// Blob and metadata writes are separate steps. Between them a reader can see a
// new blob version with the previous metadata.
type FileService struct {
	allocator Allocator
	blobs     blobstore.Store
	catalog   Catalog
	metrics   *metrics.Metrics
	log       logging.Logger
	opts      FileServiceOptions

	newBackOff func() backoff.BackOff
}

func NewFileService(allocator Allocator, blobs blobstore.Store, catalog Catalog, m *metrics.Metrics, log logging.Logger, opts FileServiceOptions) *FileService {
	s := &FileService{
		allocator: allocator,
		blobs:     blobs,
		catalog:   catalog,
		metrics:   m,
		log:       log.With("module", "files"),
		opts:      opts,
	}
	s.newBackOff = s.defaultBackOff
	return s
}

func (s *FileService) defaultBackOff() backoff.BackOff {
	if s.opts.RetryMaxElapsed <= 0 {
		return &backoff.StopBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = s.opts.RetryMaxElapsed
	return b
}

// Upload stores content as a new version of a logical file.
//
// An id allocation failure aborts before anything is written and is never
// retried. Blob and metadata writes are retried while the store is
// unavailable, always under the resolved id. A metadata failure after the
// blob write returns *PartialWriteError.
func (s *FileService) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	res, err := s.upload(ctx, req)
	s.metrics.Upload(string(req.Kind), err)
	return res, err
}

func (s *FileService) upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if err := validateIDs(req.TenantID, req.FileID, false); err != nil {
		return nil, err
	}

	fileID := req.FileID
	if fileID == "" {
		start := time.Now()
		id, err := s.allocator.Allocate(ctx, req.TenantID)
		s.metrics.ObserveStore("counter", "allocate", start)
		s.metrics.Allocation(err)
		if err != nil {
			return nil, err
		}
		fileID = id
	}

	key := models.StorageKey(req.TenantID, fileID)

	var versionID string
	err := s.retry(ctx, "blob", "put", func(ctx context.Context) error {
		var err error
		versionID, err = s.blobs.Put(ctx, key, req.Content, req.ContentType)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	rec, err := s.reconcile(ctx, req.TenantID, fileID, Incoming{
		FileName:    req.FileName,
		Kind:        req.Kind,
		ContentType: req.ContentType,
		Attributes:  req.Metadata,
	})
	if err != nil {
		s.metrics.PartialWrite()
		s.log.Error(ctx, "metadata write failed after blob write",
			"tenant_id", req.TenantID, "file_id", fileID, "storage_key", key,
			"version_id", versionID, "error", err)
		return nil, &PartialWriteError{FileID: fileID, StorageKey: key, VersionID: versionID, Err: err}
	}

	s.log.Info(ctx, "artifact stored", "tenant_id", req.TenantID, "file_id", fileID, "version_id", versionID)
	return &UploadResult{FileID: fileID, StorageKey: key, VersionID: versionID, File: rec}, nil
}

type RetryMetadataRequest struct {
	TenantID    string
	FileID      string
	FileName    string
	Kind        models.DiagramKind
	ContentType string
	Metadata    map[string]any
}

// RetryMetadata re-runs reconciliation for a file whose blob is already
// stored, without writing new content.
func (s *FileService) RetryMetadata(ctx context.Context, req RetryMetadataRequest) (*models.File, error) {
	if err := validateIDs(req.TenantID, req.FileID, true); err != nil {
		return nil, err
	}
	key := models.StorageKey(req.TenantID, req.FileID)

	if err := s.requireBlob(ctx, key); err != nil {
		return nil, err
	}

	return s.reconcile(ctx, req.TenantID, req.FileID, Incoming{
		FileName:    req.FileName,
		Kind:        req.Kind,
		ContentType: req.ContentType,
		Attributes:  req.Metadata,
	})
}

// GetImageURL returns a read-only, time limited URL for the latest version.
func (s *FileService) GetImageURL(ctx context.Context, tenantID, fileID string) (string, error) {
	if err := validateIDs(tenantID, fileID, true); err != nil {
		return "", err
	}
	key := models.StorageKey(tenantID, fileID)

	if err := s.requireBlob(ctx, key); err != nil {
		return "", err
	}

	var url string
	err := s.call(ctx, "blob", "presign", func(ctx context.Context) error {
		var err error
		url, err = s.blobs.PresignGet(ctx, key, s.opts.PresignExpiry)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return url, nil
}

// ListFiles returns a tenant's metadata records, most recently updated first.
func (s *FileService) ListFiles(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, fmt.Errorf("%w: tenantId is required", common.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var files []*models.File
	err := s.call(ctx, "metadata", "list", func(ctx context.Context) error {
		var err error
		files, err = s.catalog.List(ctx, tenantID, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []*models.File{}
	}
	return files, nil
}

func (s *FileService) reconcile(ctx context.Context, tenantID, fileID string, in Incoming) (*models.File, error) {
	var rec *models.File
	err := s.retry(ctx, "metadata", "reconcile", func(ctx context.Context) error {
		var err error
		rec, err = s.catalog.Reconcile(ctx, tenantID, fileID, in)
		return err
	})
	return rec, err
}

func (s *FileService) requireBlob(ctx context.Context, key string) error {
	var exists bool
	err := s.call(ctx, "blob", "exists", func(ctx context.Context) error {
		var err error
		exists, err = s.blobs.Exists(ctx, key)
		return err
	})
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", common.ErrNotFound, key)
	}
	return nil
}

// call runs fn once under the store timeout and records its latency.
func (s *FileService) call(ctx context.Context, store, op string, fn func(ctx context.Context) error) error {
	return callStore(ctx, s.metrics, s.opts.StoreTimeout, store, op, fn)
}

// retry runs fn until it succeeds, fails with anything other than
// common.ErrStoreUnavailable, or the retry budget is spent.
func (s *FileService) retry(ctx context.Context, store, op string, fn func(ctx context.Context) error) error {
	attempt := func() error {
		err := s.call(ctx, store, op, fn)
		if err != nil && !errors.Is(err, common.ErrStoreUnavailable) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, next time.Duration) {
		s.log.Warn(ctx, "store call failed, retrying", "store", store, "op", op, "error", err, "backoff", next)
	}

	err := backoff.RetryNotify(attempt, backoff.WithContext(s.newBackOff(), ctx), notify)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) &&
		!errors.Is(err, common.ErrStoreUnavailable) {
		err = fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	return err
}

func callStore(ctx context.Context, m *metrics.Metrics, timeout time.Duration, store, op string, fn func(ctx context.Context) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	start := time.Now()
	err := fn(ctx)
	m.ObserveStore(store, op, start)
	return err
}

// validateIDs checks caller supplied identifiers. Ids become part of the
// storage key, so they must not contain a path separator.
func validateIDs(tenantID, fileID string, fileRequired bool) error {
	if strings.TrimSpace(tenantID) == "" {
		return fmt.Errorf("%w: tenantId is required", common.ErrValidation)
	}
	if strings.Contains(tenantID, "/") {
		return fmt.Errorf("%w: tenantId must not contain '/'", common.ErrValidation)
	}
	if fileRequired && strings.TrimSpace(fileID) == "" {
		return fmt.Errorf("%w: fileId is required", common.ErrValidation)
	}
	if fileID != "" && strings.TrimSpace(fileID) == "" {
		return fmt.Errorf("%w: fileId must not be blank", common.ErrValidation)
	}
	if strings.Contains(fileID, "/") {
		return fmt.Errorf("%w: fileId must not contain '/'", common.ErrValidation)
	}
	return nil
}
