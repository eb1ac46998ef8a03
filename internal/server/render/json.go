package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/emicklei/dot"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// maxJSONNodes bounds the graph built from one document.
const maxJSONNodes = 2000

// JSONInput is an arbitrary JSON document drawn as a tree.
type JSONInput struct {
	Document any
}

func (JSONInput) Kind() models.DiagramKind { return models.KindJSON }

// DecodeJSONInput parses a JSON text, or takes an already decoded value as is.
func DecodeJSONInput(raw any) (JSONInput, error) {
	var b []byte
	switch v := raw.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return JSONInput{Document: v}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return JSONInput{}, fmt.Errorf("%w: invalid json: %w", common.ErrValidation, err)
	}
	return JSONInput{Document: doc}, nil
}

type JSONRenderer struct {
	runner Runner
}

func NewJSONRenderer(runner Runner) *JSONRenderer {
	return &JSONRenderer{runner: runner}
}

func (r *JSONRenderer) Render(ctx context.Context, req Request) (*Artifact, error) {
	in, ok := req.Input.(JSONInput)
	if !ok {
		return nil, fmt.Errorf("%w: expected json input, got %T", common.ErrValidation, req.Input)
	}

	src, err := buildJSONGraph(in.Document)
	if err != nil {
		return nil, err
	}
	return renderGraph(ctx, r.runner, src, req.OutputFormat)
}

type jsonGraph struct {
	g     *dot.Graph
	count int
}

// buildJSONGraph makes object keys, array elements and scalar leaves nodes,
// each linked to its parent. Node ids are paths so equal keys stay apart.
func buildJSONGraph(doc any) (string, error) {
	jg := &jsonGraph{g: dot.NewGraph(dot.Directed)}
	jg.g.Attr("rankdir", "LR")

	if err := jg.walk(doc, nil, "$"); err != nil {
		return "", err
	}
	if jg.count == 0 {
		return "", renderErr("json document is empty")
	}
	return jg.g.String(), nil
}

func (jg *jsonGraph) node(id, label, fill string) (dot.Node, error) {
	jg.count++
	if jg.count > maxJSONNodes {
		return dot.Node{}, renderErr("json document too large: more than %d nodes", maxJSONNodes)
	}
	return jg.g.Node(id).
		Attr("label", label).
		Attr("shape", "box").
		Attr("style", "rounded,filled").
		Attr("fillcolor", fill), nil
}

func (jg *jsonGraph) walk(v any, parent *dot.Node, path string) error {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := path + "." + k
			n, err := jg.node(p, k, "lightblue")
			if err != nil {
				return err
			}
			if parent != nil {
				jg.g.Edge(*parent, n)
			}
			if err := jg.walk(val[k], &n, p); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range val {
			p := path + "[" + strconv.Itoa(i) + "]"
			label := "[" + strconv.Itoa(i) + "]"
			n, err := jg.node(p, label, "lightgrey")
			if err != nil {
				return err
			}
			if parent != nil {
				jg.g.Edge(*parent, n)
			}
			if err := jg.walk(item, &n, p); err != nil {
				return err
			}
		}
	default:
		n, err := jg.node(path+"=", scalarLabel(val), "white")
		if err != nil {
			return err
		}
		if parent != nil {
			jg.g.Edge(*parent, n)
		}
	}
	return nil
}

func scalarLabel(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
