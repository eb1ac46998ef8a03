package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner lays out dot source and returns the image in the given format.
type Runner interface {
	Run(ctx context.Context, src, format string) ([]byte, error)
}

// GraphvizRunner shells out to the Graphviz dot executable.
type GraphvizRunner struct {
	Path string
}

func NewGraphvizRunner(path string) *GraphvizRunner {
	if path == "" {
		path = "dot"
	}
	return &GraphvizRunner{Path: path}
}

// execCommand is a seam for tests.
var execCommand = exec.CommandContext

func (g *GraphvizRunner) Run(ctx context.Context, src, format string) ([]byte, error) {
	cmd := execCommand(ctx, g.Path, "-T"+format)
	cmd.Stdin = strings.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("graphviz: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("graphviz: %w", err)
	}
	return stdout.Bytes(), nil
}
