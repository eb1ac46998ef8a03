// Package api holds the transport independent request and response shapes
// of the public API and the calls that translate them to the services.
// The gRPC and HTTP transports both decode into these types.
package api

import (
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

type GenerateRequest struct {
	TenantID     string `json:"tenantId"`
	FileID       string `json:"fileId,omitempty"`
	FileName     string `json:"fileName,omitempty"`
	DiagramType  string `json:"diagramType"`
	InputFormat  string `json:"inputFormat"`
	OutputFormat string `json:"outputFormat"`
	// InputText is the diagram source: JSON text or an inline document.
	InputText any            `json:"inputText"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type UploadRequest struct {
	TenantID    string `json:"tenantId"`
	FileID      string `json:"fileId,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	DiagramType string `json:"diagramType,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	// Content is base64 in JSON.
	Content  []byte         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type RetryMetadataRequest struct {
	TenantID    string         `json:"tenantId"`
	FileID      string         `json:"fileId"`
	FileName    string         `json:"fileName,omitempty"`
	DiagramType string         `json:"diagramType,omitempty"`
	ContentType string         `json:"contentType,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type ListVersionsRequest struct {
	TenantID  string `json:"tenantId"`
	FileID    string `json:"fileId"`
	PageToken string `json:"pageToken,omitempty"`
}

type RestoreRequest struct {
	TenantID  string `json:"tenantId"`
	FileID    string `json:"fileId"`
	VersionID string `json:"versionId"`
}

type ImageURLRequest struct {
	TenantID string `json:"tenantId"`
	FileID   string `json:"fileId"`
}

type ListFilesRequest struct {
	TenantID string `json:"tenantId"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

type FileView struct {
	TenantID    string         `json:"tenantId"`
	FileID      string         `json:"fileId"`
	FileName    string         `json:"fileName,omitempty"`
	DiagramType string         `json:"diagramType,omitempty"`
	ContentType string         `json:"contentType,omitempty"`
	StorageKey  string         `json:"storageKey"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type FileResponse struct {
	FileID     string    `json:"fileId"`
	StorageKey string    `json:"storageKey"`
	VersionID  string    `json:"versionId,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Metadata   *FileView `json:"metadata,omitempty"`
}

type VersionView struct {
	VersionID    string    `json:"versionId"`
	LastModified time.Time `json:"lastModified"`
	IsLatest     bool      `json:"isLatest"`
	Size         int64     `json:"size"`
}

type VersionsResponse struct {
	FileID        string        `json:"fileId"`
	Versions      []VersionView `json:"versions"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

type RestoreResponse struct {
	Status       string `json:"status"`
	FileID       string `json:"fileId"`
	VersionID    string `json:"versionId"`
	RestoredFrom string `json:"restoredFrom"`
}

// RestoreStatus is the status reported for a successful restore.
const RestoreStatus = "restored"

type ImageURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresIn"`
}

type ListFilesResponse struct {
	Files []FileView `json:"files"`
}

// ErrorResponse is the error body. The file fields are set for partial
// writes so the caller can retry under the same id.
type ErrorResponse struct {
	Error      string `json:"error"`
	FileID     string `json:"fileId,omitempty"`
	StorageKey string `json:"storageKey,omitempty"`
	VersionID  string `json:"versionId,omitempty"`
}

func NewFileView(f *models.File) *FileView {
	if f == nil {
		return nil
	}
	return &FileView{
		TenantID:    f.TenantID,
		FileID:      f.FileID,
		FileName:    f.FileName,
		DiagramType: string(f.DiagramKind),
		ContentType: f.ContentType,
		StorageKey:  f.StorageKey,
		Attributes:  f.Attributes,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func NewVersionsResponse(fileID string, p *models.VersionPage) *VersionsResponse {
	out := &VersionsResponse{FileID: fileID, Versions: []VersionView{}}
	if p == nil {
		return out
	}
	out.NextPageToken = p.NextPageToken
	for _, v := range p.Versions {
		out.Versions = append(out.Versions, VersionView{
			VersionID:    v.VersionID,
			LastModified: v.LastModified,
			IsLatest:     v.IsLatest,
			Size:         v.Size,
		})
	}
	return out
}
