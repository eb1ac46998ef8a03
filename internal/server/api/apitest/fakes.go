// Package apitest provides scriptable fakes of the services behind api.Service
// for transport tests.
package apitest

import (
	"context"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/services"
)

// Files is a fake api.FileService. Unset funcs return zero values.
type Files struct {
	UploadFn        func(ctx context.Context, req services.UploadRequest) (*services.UploadResult, error)
	RetryMetadataFn func(ctx context.Context, req services.RetryMetadataRequest) (*models.File, error)
	GetImageURLFn   func(ctx context.Context, tenantID, fileID string) (string, error)
	ListFilesFn     func(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error)
}

func (f *Files) Upload(ctx context.Context, req services.UploadRequest) (*services.UploadResult, error) {
	if f.UploadFn == nil {
		return &services.UploadResult{}, nil
	}
	return f.UploadFn(ctx, req)
}

func (f *Files) RetryMetadata(ctx context.Context, req services.RetryMetadataRequest) (*models.File, error) {
	if f.RetryMetadataFn == nil {
		return &models.File{}, nil
	}
	return f.RetryMetadataFn(ctx, req)
}

func (f *Files) GetImageURL(ctx context.Context, tenantID, fileID string) (string, error) {
	if f.GetImageURLFn == nil {
		return "", nil
	}
	return f.GetImageURLFn(ctx, tenantID, fileID)
}

func (f *Files) ListFiles(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error) {
	if f.ListFilesFn == nil {
		return nil, nil
	}
	return f.ListFilesFn(ctx, tenantID, limit, offset)
}

// Versions is a fake api.VersionService.
type Versions struct {
	ListVersionsFn func(ctx context.Context, tenantID, fileID, pageToken string) (*models.VersionPage, error)
	RestoreFn      func(ctx context.Context, tenantID, fileID, versionID string) (string, error)
}

func (v *Versions) ListVersions(ctx context.Context, tenantID, fileID, pageToken string) (*models.VersionPage, error) {
	if v.ListVersionsFn == nil {
		return &models.VersionPage{}, nil
	}
	return v.ListVersionsFn(ctx, tenantID, fileID, pageToken)
}

func (v *Versions) Restore(ctx context.Context, tenantID, fileID, versionID string) (string, error) {
	if v.RestoreFn == nil {
		return "", nil
	}
	return v.RestoreFn(ctx, tenantID, fileID, versionID)
}

// Generator is a fake api.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req services.GenerateRequest) (*services.GenerateResult, error)
}

func (g *Generator) Generate(ctx context.Context, req services.GenerateRequest) (*services.GenerateResult, error) {
	if g.GenerateFn == nil {
		return &services.GenerateResult{UploadResult: &services.UploadResult{}}, nil
	}
	return g.GenerateFn(ctx, req)
}

// Backend bundles the fakes.
type Backend struct {
	Files     *Files
	Versions  *Versions
	Generator *Generator
}

func NewBackend() *Backend {
	return &Backend{Files: &Files{}, Versions: &Versions{}, Generator: &Generator{}}
}

// Service wires the fakes into an api.Service with a one hour URL expiry.
func (b *Backend) Service() *api.Service {
	return api.NewService(b.Files, b.Versions, b.Generator, time.Hour)
}
