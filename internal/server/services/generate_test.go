package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/logging"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/render"
)

type fakeRenderer struct {
	got   render.Request
	calls int
	err   error
}

func (r *fakeRenderer) Render(_ context.Context, req render.Request) (*render.Artifact, error) {
	r.calls++
	r.got = req
	if r.err != nil {
		return nil, r.err
	}
	return &render.Artifact{Content: []byte("<svg/>"), ContentType: "image/svg+xml"}, nil
}

func TestGenerate_StoresRenderedImage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r := &fakeRenderer{}
	svc := NewGenerateService(r, f.files, logging.Nop{})

	res, err := svc.Generate(ctx, GenerateRequest{
		TenantID: "acme", FileName: "config.svg", Kind: models.KindJSON,
		InputFormat: "json", OutputFormat: "svg", Input: `{"a": [1, 2]}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "file_001", res.FileID)
	assert.Equal(t, "acme/file_001", res.StorageKey)
	assert.Contains(t, res.ImageURL, "acme/file_001")
	assert.Equal(t, "svg", r.got.OutputFormat)
	in, ok := r.got.Input.(render.JSONInput)
	require.True(t, ok)
	assert.Contains(t, in.Document, "a")

	content, ok := f.blobs.Content("acme/file_001")
	require.True(t, ok)
	assert.Equal(t, []byte("<svg/>"), content)

	rec, err := f.catalog.Get(ctx, "acme", "file_001")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", rec.ContentType)
	assert.Equal(t, models.KindJSON, rec.DiagramKind)
}

func TestGenerate_ERInputMustBeText(t *testing.T) {
	f := newFixture(t)
	r := &fakeRenderer{}
	svc := NewGenerateService(r, f.files, logging.Nop{})

	_, err := svc.Generate(context.Background(), GenerateRequest{
		TenantID: "acme", Kind: models.KindER, InputFormat: "markup", OutputFormat: "png",
		Input: map[string]any{"tables": 1},
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Generate(context.Background(), GenerateRequest{
		TenantID: "acme", Kind: models.KindER, InputFormat: "markup", OutputFormat: "png",
		Input: "[users]\n*id",
	})
	require.NoError(t, err)
	in, ok := r.got.Input.(render.ERInput)
	require.True(t, ok)
	assert.Equal(t, "markup", in.Format)
	assert.Equal(t, "[users]\n*id", in.Text)
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
		msg  string
	}{
		{"tenant", GenerateRequest{Kind: models.KindAWS, InputFormat: "json", OutputFormat: "png", Input: "{}"}, "Missing tenantId"},
		{"input format", GenerateRequest{TenantID: "acme", Kind: models.KindAWS, OutputFormat: "png", Input: "{}"}, "Missing input format"},
		{"output format", GenerateRequest{TenantID: "acme", Kind: models.KindAWS, InputFormat: "json", Input: "{}"}, "Missing output format"},
		{"empty input", GenerateRequest{TenantID: "acme", Kind: models.KindAWS, InputFormat: "json", OutputFormat: "png", Input: " "}, "Missing input text"},
		{"nil input", GenerateRequest{TenantID: "acme", Kind: models.KindAWS, InputFormat: "json", OutputFormat: "png"}, "Missing input text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			r := &fakeRenderer{}
			svc := NewGenerateService(r, f.files, logging.Nop{})

			_, err := svc.Generate(context.Background(), tt.req)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, 0, r.calls)
			assert.Equal(t, 0, f.alloc.calls)
		})
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	f := newFixture(t)
	svc := NewGenerateService(&fakeRenderer{}, f.files, logging.Nop{})

	_, err := svc.Generate(context.Background(), GenerateRequest{
		TenantID: "acme", Kind: "bpmn", InputFormat: "xml", OutputFormat: "png", Input: "<x/>",
	})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestGenerate_RenderFailureStoresNothing(t *testing.T) {
	f := newFixture(t)
	r := &fakeRenderer{err: fmt.Errorf("%w: Unknown node type: aws.foo", common.ErrRender)}
	svc := NewGenerateService(r, f.files, logging.Nop{})

	_, err := svc.Generate(context.Background(), GenerateRequest{
		TenantID: "acme", Kind: models.KindAWS, InputFormat: "json", OutputFormat: "png",
		Input: `{"nodes": [{"id": "a", "type": "aws.foo"}]}`,
	})
	assert.ErrorIs(t, err, common.ErrRender)
	assert.Equal(t, 0, f.alloc.calls)
	_, ok := f.blobs.Content("acme/file_001")
	assert.False(t, ok)
}
