package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// -------- test fakes --------

type fakeAllocator struct {
	mu    sync.Mutex
	next  map[string]int64
	calls int
	err   error
}

func (a *fakeAllocator) Allocate(_ context.Context, tenantID string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	if a.next == nil {
		a.next = map[string]int64{}
	}
	a.next[tenantID]++
	return models.FormatFileID(a.next[tenantID]), nil
}

// memCatalog keeps the reconciliation rules of PostgresCatalog in memory.
type memCatalog struct {
	mu      sync.Mutex
	records map[string]*models.File
	clock   time.Time

	reconcileCalls int
	reconcileErrs  []error
	touchErr       error
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		records: map[string]*models.File{},
		clock:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (c *memCatalog) tick() time.Time {
	c.clock = c.clock.Add(time.Second)
	return c.clock
}

func (c *memCatalog) Reconcile(_ context.Context, tenantID, fileID string, in Incoming) (*models.File, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reconcileCalls++
	if len(c.reconcileErrs) > 0 {
		err := c.reconcileErrs[0]
		c.reconcileErrs = c.reconcileErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	now := c.tick()
	key := models.StorageKey(tenantID, fileID)
	rec, ok := c.records[key]
	if !ok {
		attrs := map[string]any{}
		for k, v := range in.Attributes {
			attrs[k] = v
		}
		rec = &models.File{
			TenantID: tenantID, FileID: fileID, FileName: in.FileName, DiagramKind: in.Kind,
			ContentType: in.ContentType, StorageKey: key, Attributes: attrs,
			CreatedAt: now, UpdatedAt: now,
		}
		c.records[key] = rec
	} else {
		if now.After(rec.UpdatedAt) {
			rec.UpdatedAt = now
		}
		if in.FileName != "" {
			rec.FileName = in.FileName
		}
		for k, v := range in.Attributes {
			rec.Attributes[k] = v
		}
	}
	cp := *rec
	return &cp, nil
}

func (c *memCatalog) Touch(_ context.Context, tenantID, fileID string) (*models.File, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.touchErr != nil {
		return nil, c.touchErr
	}
	rec, ok := c.records[models.StorageKey(tenantID, fileID)]
	if !ok {
		return nil, common.ErrNotFound
	}
	rec.UpdatedAt = c.tick()
	cp := *rec
	return &cp, nil
}

func (c *memCatalog) Get(_ context.Context, tenantID, fileID string) (*models.File, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[models.StorageKey(tenantID, fileID)]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (c *memCatalog) List(_ context.Context, tenantID string, limit, offset int) ([]*models.File, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*models.File
	for _, r := range c.records {
		if r.TenantID == tenantID {
			cp := *r
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// flakyStore fails the first putFailures Put calls with ErrStoreUnavailable.
type flakyStore struct {
	blobstore.Store
	putFailures int
	putCalls    int
}

func (f *flakyStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	f.putCalls++
	if f.putCalls <= f.putFailures {
		return "", fmt.Errorf("%w: connection reset", common.ErrStoreUnavailable)
	}
	return f.Store.Put(ctx, key, body, contentType)
}

// -------- helpers --------

type fixture struct {
	alloc    *fakeAllocator
	blobs    *blobstore.MemoryStore
	catalog  *memCatalog
	metrics  *metrics.Metrics
	files    *FileService
	versions *VersionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		alloc:   &fakeAllocator{},
		blobs:   blobstore.NewMemoryStore("http://blobs.local"),
		catalog: newMemCatalog(),
		metrics: metrics.NewMetrics(),
	}
	f.files = newTestFileService(f.alloc, f.blobs, f.catalog, f.metrics)
	f.versions = NewVersionService(f.blobs, f.catalog, f.metrics, logging.Nop{}, 2, time.Second)
	return f
}

func newTestFileService(alloc Allocator, blobs blobstore.Store, catalog Catalog, m *metrics.Metrics) *FileService {
	s := NewFileService(alloc, blobs, catalog, m, logging.Nop{}, FileServiceOptions{
		StoreTimeout:    time.Second,
		RetryMaxElapsed: time.Second,
		PresignExpiry:   time.Hour,
	})
	s.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 3)
	}
	return s
}
