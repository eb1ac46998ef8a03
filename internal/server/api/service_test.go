package api_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api/apitest"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/services"
)

func TestGenerate_MapsRequest(t *testing.T) {
	b := apitest.NewBackend()
	var got services.GenerateRequest
	b.Generator.GenerateFn = func(_ context.Context, req services.GenerateRequest) (*services.GenerateResult, error) {
		got = req
		return &services.GenerateResult{
			UploadResult: &services.UploadResult{FileID: "file_001", StorageKey: "acme/file_001", VersionID: "v1"},
			ImageURL:     "http://blobs/acme/file_001",
		}, nil
	}

	res, err := b.Service().Generate(context.Background(), api.GenerateRequest{
		TenantID: "acme", DiagramType: "AWS", InputFormat: "json", OutputFormat: "png", InputText: "{}",
	})
	require.NoError(t, err)

	assert.Equal(t, models.KindAWS, got.Kind)
	assert.Equal(t, "{}", got.Input)
	assert.Equal(t, "file_001", res.FileID)
	assert.Equal(t, "http://blobs/acme/file_001", res.ImageURL)
	assert.Nil(t, res.Metadata)
}

func TestGenerate_UnknownDiagramType(t *testing.T) {
	b := apitest.NewBackend()

	_, err := b.Service().Generate(context.Background(), api.GenerateRequest{TenantID: "acme", DiagramType: "uml"})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestUpload_OptionalKind(t *testing.T) {
	b := apitest.NewBackend()
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	b.Files.UploadFn = func(_ context.Context, req services.UploadRequest) (*services.UploadResult, error) {
		return &services.UploadResult{
			FileID: "file_002", StorageKey: "acme/file_002", VersionID: "v9",
			File: &models.File{TenantID: "acme", FileID: "file_002", DiagramKind: req.Kind, CreatedAt: created, UpdatedAt: created},
		}, nil
	}
	svc := b.Service()

	res, err := svc.Upload(context.Background(), api.UploadRequest{TenantID: "acme", Content: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, "", res.Metadata.DiagramType)
	assert.Equal(t, created, res.Metadata.CreatedAt)

	res, err = svc.Upload(context.Background(), api.UploadRequest{TenantID: "acme", DiagramType: "er"})
	require.NoError(t, err)
	assert.Equal(t, "er", res.Metadata.DiagramType)

	_, err = svc.Upload(context.Background(), api.UploadRequest{TenantID: "acme", DiagramType: "visio"})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestListVersionsAndRestore(t *testing.T) {
	b := apitest.NewBackend()
	b.Versions.ListVersionsFn = func(_ context.Context, _, _, token string) (*models.VersionPage, error) {
		return &models.VersionPage{
			Versions:      []models.BlobVersion{{VersionID: "v2", IsLatest: true, Size: 3}, {VersionID: "v1", Size: 2}},
			NextPageToken: token + "next",
		}, nil
	}
	b.Versions.RestoreFn = func(_ context.Context, _, _, versionID string) (string, error) {
		return "v3", nil
	}
	svc := b.Service()

	page, err := svc.ListVersions(context.Background(), api.ListVersionsRequest{TenantID: "acme", FileID: "file_001"})
	require.NoError(t, err)
	require.Len(t, page.Versions, 2)
	assert.True(t, page.Versions[0].IsLatest)
	assert.Equal(t, "next", page.NextPageToken)

	res, err := svc.Restore(context.Background(), api.RestoreRequest{TenantID: "acme", FileID: "file_001", VersionID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, api.RestoreResponse{Status: "restored", FileID: "file_001", VersionID: "v3", RestoredFrom: "v1"}, *res)
}

func TestListVersions_EmptyPageHasSlice(t *testing.T) {
	b := apitest.NewBackend()

	page, err := b.Service().ListVersions(context.Background(), api.ListVersionsRequest{TenantID: "acme", FileID: "file_404"})
	require.NoError(t, err)
	assert.NotNil(t, page.Versions)
	assert.Empty(t, page.Versions)
}

func TestImageURLAndListFiles(t *testing.T) {
	b := apitest.NewBackend()
	b.Files.GetImageURLFn = func(context.Context, string, string) (string, error) { return "http://u", nil }
	b.Files.ListFilesFn = func(_ context.Context, tenantID string, limit, offset int) ([]*models.File, error) {
		return []*models.File{{TenantID: tenantID, FileID: "file_001"}}, nil
	}
	svc := b.Service()

	u, err := svc.ImageURL(context.Background(), api.ImageURLRequest{TenantID: "acme", FileID: "file_001"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), u.ExpiresIn)

	list, err := svc.ListFiles(context.Background(), api.ListFilesRequest{TenantID: "acme"})
	require.NoError(t, err)
	require.Len(t, list.Files, 1)
	assert.Equal(t, "acme", list.Files[0].TenantID)
}

func TestNewErrorResponse(t *testing.T) {
	body := api.NewErrorResponse(errors.New("boom"))
	assert.Equal(t, api.ErrorResponse{Error: "boom"}, body)

	pw := &services.PartialWriteError{FileID: "file_004", StorageKey: "acme/file_004", VersionID: "v1", Err: errors.New("db")}
	body = api.NewErrorResponse(pw)
	assert.Equal(t, "file_004", body.FileID)
	assert.Equal(t, "acme/file_004", body.StorageKey)
	assert.Equal(t, "v1", body.VersionID)
}
