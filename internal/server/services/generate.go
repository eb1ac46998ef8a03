package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/render"
)

// Renderer produces image bytes for a diagram; *render.Dispatcher implements it.
type Renderer interface {
	Render(ctx context.Context, req render.Request) (*render.Artifact, error)
}

type GenerateRequest struct {
	TenantID     string
	FileID       string
	FileName     string
	Kind         models.DiagramKind
	InputFormat  string
	OutputFormat string
	// Input is a JSON text or an already decoded document.
	Input    any
	Metadata map[string]any
}

type GenerateResult struct {
	*UploadResult
	ImageURL string
}

// GenerateService renders a diagram and stores the image through FileService.
type GenerateService struct {
	renderer Renderer
	files    *FileService
	log      logging.Logger
}

func NewGenerateService(renderer Renderer, files *FileService, log logging.Logger) *GenerateService {
	return &GenerateService{renderer: renderer, files: files, log: log.With("module", "generate")}
}

func (s *GenerateService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	input, err := decodeInput(req)
	if err != nil {
		return nil, err
	}

	artifact, err := s.renderer.Render(ctx, render.Request{OutputFormat: req.OutputFormat, Input: input})
	if err != nil {
		return nil, err
	}

	up, err := s.files.Upload(ctx, UploadRequest{
		TenantID:    req.TenantID,
		FileID:      req.FileID,
		FileName:    req.FileName,
		Kind:        req.Kind,
		Content:     artifact.Content,
		ContentType: artifact.ContentType,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, err
	}

	res := &GenerateResult{UploadResult: up}
	url, err := s.files.GetImageURL(ctx, req.TenantID, up.FileID)
	if err != nil {
		s.log.Warn(ctx, "image url not issued", "tenant_id", req.TenantID, "file_id", up.FileID, "error", err)
	} else {
		res.ImageURL = url
	}
	return res, nil
}

// decodeInput checks the required request fields and builds the kind
// specific render input.
func decodeInput(req GenerateRequest) (render.Input, error) {
	switch {
	case strings.TrimSpace(req.TenantID) == "":
		return nil, fmt.Errorf("%w: Missing tenantId", common.ErrValidation)
	case strings.TrimSpace(req.InputFormat) == "":
		return nil, fmt.Errorf("%w: Missing input format", common.ErrValidation)
	case strings.TrimSpace(req.OutputFormat) == "":
		return nil, fmt.Errorf("%w: Missing output format", common.ErrValidation)
	case isEmptyInput(req.Input):
		return nil, fmt.Errorf("%w: Missing input text", common.ErrValidation)
	}

	switch req.Kind {
	case models.KindAWS:
		in, err := render.DecodeAWSInput(req.Input)
		if err != nil {
			return nil, err
		}
		return in, nil
	case models.KindER:
		text, ok := req.Input.(string)
		if !ok {
			return nil, fmt.Errorf("%w: er input must be text", common.ErrValidation)
		}
		return render.ERInput{Format: req.InputFormat, Text: text}, nil
	case models.KindJSON:
		in, err := render.DecodeJSONInput(req.Input)
		if err != nil {
			return nil, err
		}
		return in, nil
	default:
		return nil, fmt.Errorf("%w: diagram kind %q", common.ErrUnsupportedFormat, req.Kind)
	}
}

func isEmptyInput(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}
