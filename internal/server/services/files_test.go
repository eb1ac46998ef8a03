package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

func TestUpload_FirstUploadAllocatesID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.files.Upload(ctx, UploadRequest{
		TenantID: "acme", FileName: "arch.png", Kind: models.KindAWS,
		Content: []byte("v1"), ContentType: "image/png",
		Metadata: map[string]any{"owner": "ops"},
	})
	require.NoError(t, err)

	assert.Equal(t, "file_001", res.FileID)
	assert.Equal(t, "acme/file_001", res.StorageKey)
	assert.NotEmpty(t, res.VersionID)
	assert.Equal(t, res.File.CreatedAt, res.File.UpdatedAt)
	assert.Equal(t, models.KindAWS, res.File.DiagramKind)
	assert.Equal(t, "ops", res.File.Attributes["owner"])

	page, err := f.versions.ListVersions(ctx, "acme", "file_001", "")
	require.NoError(t, err)
	require.Len(t, page.Versions, 1)
	assert.True(t, page.Versions[0].IsLatest)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.UploadsTotal.WithLabelValues("aws", "ok")))
}

func TestUpload_ReuseIDCreatesNewVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.files.Upload(ctx, UploadRequest{TenantID: "acme", Kind: models.KindAWS, Content: []byte("same")})
	require.NoError(t, err)

	second, err := f.files.Upload(ctx, UploadRequest{TenantID: "acme", FileID: first.FileID, Kind: models.KindAWS, Content: []byte("same")})
	require.NoError(t, err)

	assert.Equal(t, "file_001", second.FileID)
	assert.Equal(t, first.File.CreatedAt, second.File.CreatedAt)
	assert.True(t, second.File.UpdatedAt.After(second.File.CreatedAt))
	assert.NotEqual(t, first.VersionID, second.VersionID)
	assert.Equal(t, 1, f.alloc.calls)

	page, err := f.versions.ListVersions(ctx, "acme", "file_001", "")
	require.NoError(t, err)
	require.Len(t, page.Versions, 2)
	assert.Equal(t, second.VersionID, page.Versions[0].VersionID)
	assert.True(t, page.Versions[0].IsLatest)
	assert.False(t, page.Versions[1].IsLatest)
}

func TestUpload_SuppliedUnknownIDCreatesRecord(t *testing.T) {
	f := newFixture(t)

	res, err := f.files.Upload(context.Background(), UploadRequest{TenantID: "acme", FileID: "custom", Content: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, "custom", res.FileID)
	assert.Equal(t, res.File.CreatedAt, res.File.UpdatedAt)
	assert.Equal(t, 0, f.alloc.calls)
}

func TestUpload_TenantsAreIsolated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a, err := f.files.Upload(ctx, UploadRequest{TenantID: "acme", Content: []byte("a")})
	require.NoError(t, err)
	b, err := f.files.Upload(ctx, UploadRequest{TenantID: "globex", Content: []byte("b")})
	require.NoError(t, err)

	assert.Equal(t, "file_001", a.FileID)
	assert.Equal(t, "file_001", b.FileID)
	assert.NotEqual(t, a.StorageKey, b.StorageKey)
}

func TestUpload_CounterFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.alloc.err = fmt.Errorf("%w: timeout", common.ErrStoreUnavailable)

	_, err := f.files.Upload(context.Background(), UploadRequest{TenantID: "acme", Content: []byte("x")})
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Equal(t, 1, f.alloc.calls)

	ok, _ := f.blobs.Exists(context.Background(), "acme/file_001")
	assert.False(t, ok)
	assert.Equal(t, 0, f.catalog.reconcileCalls)
}

func TestUpload_BlobWriteRetriedUnderSameID(t *testing.T) {
	f := newFixture(t)
	flaky := &flakyStore{Store: f.blobs, putFailures: 2}
	svc := newTestFileService(f.alloc, flaky, f.catalog, f.metrics)

	res, err := svc.Upload(context.Background(), UploadRequest{TenantID: "acme", Content: []byte("x")})
	require.NoError(t, err)

	assert.Equal(t, "file_001", res.FileID)
	assert.Equal(t, 3, flaky.putCalls)
	assert.Equal(t, 1, f.alloc.calls)
}

func TestUpload_BlobWriteGivesUp(t *testing.T) {
	f := newFixture(t)
	flaky := &flakyStore{Store: f.blobs, putFailures: 100}
	svc := newTestFileService(f.alloc, flaky, f.catalog, f.metrics)

	_, err := svc.Upload(context.Background(), UploadRequest{TenantID: "acme", Content: []byte("x")})
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Equal(t, 4, flaky.putCalls)
	assert.Equal(t, 0, f.catalog.reconcileCalls)
}

func TestUpload_MetadataFailureIsPartialWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	down := fmt.Errorf("%w: connection refused", common.ErrStoreUnavailable)
	f.catalog.reconcileErrs = []error{down, down, down, down}

	_, err := f.files.Upload(ctx, UploadRequest{TenantID: "acme", Kind: models.KindER, Content: []byte("img")})
	require.Error(t, err)

	var pw *PartialWriteError
	require.True(t, errors.As(err, &pw))
	assert.Equal(t, "file_001", pw.FileID)
	assert.Equal(t, "acme/file_001", pw.StorageKey)
	assert.NotEmpty(t, pw.VersionID)
	assert.ErrorIs(t, err, common.ErrPartialWrite)
	assert.Equal(t, 4, f.catalog.reconcileCalls)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PartialWritesTotal))

	// the blob is there, the catalog is not
	content, ok := f.blobs.Content("acme/file_001")
	require.True(t, ok)
	assert.Equal(t, []byte("img"), content)
	_, err = f.catalog.Get(ctx, "acme", "file_001")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// repair without re-uploading
	rec, err := f.files.RetryMetadata(ctx, RetryMetadataRequest{TenantID: "acme", FileID: pw.FileID, Kind: models.KindER})
	require.NoError(t, err)
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)

	page, _ := f.versions.ListVersions(ctx, "acme", "file_001", "")
	assert.Len(t, page.Versions, 1)
}

func TestUpload_MetadataValidationErrorNotRetried(t *testing.T) {
	f := newFixture(t)
	f.catalog.reconcileErrs = []error{fmt.Errorf("%w: metadata is not JSON-encodable", common.ErrValidation)}

	_, err := f.files.Upload(context.Background(), UploadRequest{TenantID: "acme", Content: []byte("x")})
	assert.ErrorIs(t, err, common.ErrPartialWrite)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 1, f.catalog.reconcileCalls)
}

func TestUpload_Validation(t *testing.T) {
	f := newFixture(t)

	for _, req := range []UploadRequest{
		{TenantID: ""},
		{TenantID: "  "},
		{TenantID: "a/b"},
		{TenantID: "acme", FileID: "../file_001"},
		{TenantID: "acme", FileID: " "},
		{TenantID: "acme", FileID: "\t"},
	} {
		_, err := f.files.Upload(context.Background(), req)
		assert.ErrorIs(t, err, common.ErrValidation, "%+v", req)
	}
	assert.Equal(t, 0, f.alloc.calls)
}

func TestRetryMetadata_UnknownBlob(t *testing.T) {
	f := newFixture(t)

	_, err := f.files.RetryMetadata(context.Background(), RetryMetadataRequest{TenantID: "acme", FileID: "file_009"})
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 0, f.catalog.reconcileCalls)
}

func TestGetImageURL(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.files.GetImageURL(ctx, "acme", "file_001")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = f.files.Upload(ctx, UploadRequest{TenantID: "acme", Content: []byte("x")})
	require.NoError(t, err)

	url, err := f.files.GetImageURL(ctx, "acme", "file_001")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://blobs.local/acme/file_001?"))
	assert.Contains(t, url, "expires=3600")

	_, err = f.files.GetImageURL(ctx, "acme", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestListFiles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.files.Upload(ctx, UploadRequest{TenantID: "acme", Content: []byte{byte(i)}})
		require.NoError(t, err)
	}
	_, err := f.files.Upload(ctx, UploadRequest{TenantID: "globex", Content: []byte("g")})
	require.NoError(t, err)

	all, err := f.files.ListFiles(ctx, "acme", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := f.files.ListFiles(ctx, "acme", 2, 0)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	empty, err := f.files.ListFiles(ctx, "initech", 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = f.files.ListFiles(ctx, "", 10, 0)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestPartialWriteError_Message(t *testing.T) {
	err := &PartialWriteError{FileID: "file_002", StorageKey: "acme/file_002", VersionID: "v7", Err: errors.New("db down")}

	assert.Contains(t, err.Error(), "acme/file_002")
	assert.Contains(t, err.Error(), "db down")
	assert.ErrorIs(t, err, common.ErrPartialWrite)
}
