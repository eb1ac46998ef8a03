// Package render turns diagram descriptions into image bytes. Renderers build
// a Graphviz graph and hand it to the dot binary; the Dispatcher picks the
// renderer for a diagram kind.
package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// Output formats accepted by every renderer.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var contentTypes = map[string]string{
	FormatPNG: "image/png",
	FormatSVG: "image/svg+xml",
}

// Input is the kind specific part of a Request: AWSInput, ERInput or JSONInput.
type Input interface {
	Kind() models.DiagramKind
}

type Request struct {
	OutputFormat string
	Input        Input
}

// Artifact is a rendered image.
type Artifact struct {
	Content     []byte
	ContentType string
}

type Renderer interface {
	Render(ctx context.Context, req Request) (*Artifact, error)
}

// Dispatcher routes requests to the renderer registered for their kind.
type Dispatcher struct {
	renderers map[models.DiagramKind]Renderer
	metrics   *metrics.Metrics
}

func NewDispatcher(m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{renderers: make(map[models.DiagramKind]Renderer), metrics: m}
}

// NewDefaultDispatcher registers the AWS, ER and JSON renderers over runner.
func NewDefaultDispatcher(runner Runner, introspector SchemaIntrospector, m *metrics.Metrics) *Dispatcher {
	d := NewDispatcher(m)
	d.Register(models.KindAWS, NewAWSRenderer(runner))
	d.Register(models.KindER, NewERRenderer(runner, introspector))
	d.Register(models.KindJSON, NewJSONRenderer(runner))
	return d
}

func (d *Dispatcher) Register(kind models.DiagramKind, r Renderer) {
	d.renderers[kind] = r
}

// Render fails with common.ErrUnsupportedFormat for unknown kinds and output
// formats, common.ErrValidation for bad input and common.ErrRender otherwise.
func (d *Dispatcher) Render(ctx context.Context, req Request) (*Artifact, error) {
	if req.Input == nil {
		return nil, fmt.Errorf("%w: input is required", common.ErrValidation)
	}
	kind := req.Input.Kind()

	a, err := d.render(ctx, kind, req)
	d.metrics.Render(string(kind), err)
	return a, err
}

func (d *Dispatcher) render(ctx context.Context, kind models.DiagramKind, req Request) (*Artifact, error) {
	r, ok := d.renderers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: diagram kind %q", common.ErrUnsupportedFormat, kind)
	}

	req.OutputFormat = strings.ToLower(strings.TrimSpace(req.OutputFormat))
	if _, ok := contentTypes[req.OutputFormat]; !ok {
		return nil, fmt.Errorf("%w: output format %q", common.ErrUnsupportedFormat, req.OutputFormat)
	}

	a, err := r.Render(ctx, req)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedFormat) || errors.Is(err, common.ErrValidation) || errors.Is(err, common.ErrRender) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrRender, err)
	}
	return a, nil
}

// renderGraph runs the dot source through runner and wraps the output.
func renderGraph(ctx context.Context, runner Runner, src, format string) (*Artifact, error) {
	out, err := runner.Run(ctx, src, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrRender, err)
	}
	return &Artifact{Content: out, ContentType: contentTypes[format]}, nil
}

func renderErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrRender, fmt.Sprintf(format, args...))
}
