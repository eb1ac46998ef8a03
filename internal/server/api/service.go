package api

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/services"
)

type FileService interface {
	Upload(ctx context.Context, req services.UploadRequest) (*services.UploadResult, error)
	RetryMetadata(ctx context.Context, req services.RetryMetadataRequest) (*models.File, error)
	GetImageURL(ctx context.Context, tenantID, fileID string) (string, error)
	ListFiles(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error)
}

type VersionService interface {
	ListVersions(ctx context.Context, tenantID, fileID, pageToken string) (*models.VersionPage, error)
	Restore(ctx context.Context, tenantID, fileID, versionID string) (string, error)
}

type Generator interface {
	Generate(ctx context.Context, req services.GenerateRequest) (*services.GenerateResult, error)
}

// Service exposes the services through the API types.
type Service struct {
	files         FileService
	versions      VersionService
	generator     Generator
	presignExpiry time.Duration
}

func NewService(files FileService, versions VersionService, generator Generator, presignExpiry time.Duration) *Service {
	return &Service{files: files, versions: versions, generator: generator, presignExpiry: presignExpiry}
}

func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*FileResponse, error) {
	kind, err := models.ParseDiagramKind(req.DiagramType)
	if err != nil {
		return nil, err
	}
	res, err := s.generator.Generate(ctx, services.GenerateRequest{
		TenantID:     req.TenantID,
		FileID:       req.FileID,
		FileName:     req.FileName,
		Kind:         kind,
		InputFormat:  req.InputFormat,
		OutputFormat: req.OutputFormat,
		Input:        req.InputText,
		Metadata:     req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	out := uploadResponse(res.UploadResult)
	out.ImageURL = res.ImageURL
	return out, nil
}

func (s *Service) Upload(ctx context.Context, req UploadRequest) (*FileResponse, error) {
	kind, err := optionalKind(req.DiagramType)
	if err != nil {
		return nil, err
	}
	res, err := s.files.Upload(ctx, services.UploadRequest{
		TenantID:    req.TenantID,
		FileID:      req.FileID,
		FileName:    req.FileName,
		Kind:        kind,
		Content:     req.Content,
		ContentType: req.ContentType,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return uploadResponse(res), nil
}

func (s *Service) RetryMetadata(ctx context.Context, req RetryMetadataRequest) (*FileResponse, error) {
	kind, err := optionalKind(req.DiagramType)
	if err != nil {
		return nil, err
	}
	rec, err := s.files.RetryMetadata(ctx, services.RetryMetadataRequest{
		TenantID:    req.TenantID,
		FileID:      req.FileID,
		FileName:    req.FileName,
		Kind:        kind,
		ContentType: req.ContentType,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return &FileResponse{FileID: rec.FileID, StorageKey: rec.StorageKey, Metadata: NewFileView(rec)}, nil
}

func (s *Service) ListVersions(ctx context.Context, req ListVersionsRequest) (*VersionsResponse, error) {
	page, err := s.versions.ListVersions(ctx, req.TenantID, req.FileID, req.PageToken)
	if err != nil {
		return nil, err
	}
	return NewVersionsResponse(req.FileID, page), nil
}

func (s *Service) Restore(ctx context.Context, req RestoreRequest) (*RestoreResponse, error) {
	v, err := s.versions.Restore(ctx, req.TenantID, req.FileID, req.VersionID)
	if err != nil {
		return nil, err
	}
	return &RestoreResponse{Status: RestoreStatus, FileID: req.FileID, VersionID: v, RestoredFrom: req.VersionID}, nil
}

func (s *Service) ImageURL(ctx context.Context, req ImageURLRequest) (*ImageURLResponse, error) {
	url, err := s.files.GetImageURL(ctx, req.TenantID, req.FileID)
	if err != nil {
		return nil, err
	}
	return &ImageURLResponse{URL: url, ExpiresIn: int64(s.presignExpiry / time.Second)}, nil
}

func (s *Service) ListFiles(ctx context.Context, req ListFilesRequest) (*ListFilesResponse, error) {
	files, err := s.files.ListFiles(ctx, req.TenantID, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	out := &ListFilesResponse{Files: make([]FileView, 0, len(files))}
	for _, f := range files {
		out.Files = append(out.Files, *NewFileView(f))
	}
	return out, nil
}

// NewErrorResponse builds the error body for err.
func NewErrorResponse(err error) ErrorResponse {
	body := ErrorResponse{Error: err.Error()}
	var pw *services.PartialWriteError
	if errors.As(err, &pw) {
		body.FileID = pw.FileID
		body.StorageKey = pw.StorageKey
		body.VersionID = pw.VersionID
	}
	return body
}

func uploadResponse(r *services.UploadResult) *FileResponse {
	return &FileResponse{
		FileID:     r.FileID,
		StorageKey: r.StorageKey,
		VersionID:  r.VersionID,
		Metadata:   NewFileView(r.File),
	}
}

func optionalKind(s string) (models.DiagramKind, error) {
	if s == "" {
		return "", nil
	}
	return models.ParseDiagramKind(s)
}
