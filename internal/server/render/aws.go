package render

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"sort"

	"github.com/emicklei/dot"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

type AWSNode struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

type AWSEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// AWSInput is an architecture graph of catalogued AWS resources.
type AWSInput struct {
	Nodes []AWSNode `json:"nodes"`
	Edges []AWSEdge `json:"edges"`
}

func (AWSInput) Kind() models.DiagramKind { return models.KindAWS }

// DecodeAWSInput accepts either a JSON document or its already decoded form.
func DecodeAWSInput(raw any) (AWSInput, error) {
	var in AWSInput

	var b []byte
	switch v := raw.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		var err error
		if b, err = json.Marshal(v); err != nil {
			return in, fmt.Errorf("%w: aws input: %w", common.ErrValidation, err)
		}
	}

	if err := json.Unmarshal(b, &in); err != nil {
		return in, fmt.Errorf("%w: aws input must be {nodes, edges}: %w", common.ErrValidation, err)
	}
	return in, nil
}

// IsKnownAWSNodeType reports whether t is in the resource catalogue.
func IsKnownAWSNodeType(t string) bool {
	_, ok := awsNodeTypes[t]
	return ok
}

type AWSRenderer struct {
	runner Runner
}

func NewAWSRenderer(runner Runner) *AWSRenderer {
	return &AWSRenderer{runner: runner}
}

func (r *AWSRenderer) Render(ctx context.Context, req Request) (*Artifact, error) {
	in, ok := req.Input.(AWSInput)
	if !ok {
		return nil, fmt.Errorf("%w: expected aws input, got %T", common.ErrValidation, req.Input)
	}

	src, err := buildAWSGraph(in)
	if err != nil {
		return nil, err
	}
	return renderGraph(ctx, r.runner, src, req.OutputFormat)
}

func buildAWSGraph(in AWSInput) (string, error) {
	if len(in.Nodes) == 0 {
		return "", renderErr("aws diagram has no nodes")
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("label", "AWS Architecture")
	g.Attr("labelloc", "t")
	g.Attr("rankdir", "LR")

	// one cluster per catalogue category, created in a stable order
	byCategory := map[string][]AWSNode{}
	seen := map[string]struct{}{}
	for _, n := range in.Nodes {
		if n.ID == "" {
			return "", renderErr("aws node without id")
		}
		if _, dup := seen[n.ID]; dup {
			return "", renderErr("duplicate node id: %s", n.ID)
		}
		seen[n.ID] = struct{}{}

		t, ok := awsNodeTypes[n.Type]
		if !ok {
			return "", renderErr("Unknown node type: %s", n.Type)
		}
		byCategory[t.Category] = append(byCategory[t.Category], n)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	nodes := map[string]dot.Node{}
	for _, c := range categories {
		sub := g.Subgraph(c, dot.ClusterOption{})
		sub.Attr("label", c)
		sub.Attr("style", "rounded,dashed")
		for _, n := range byCategory[c] {
			label := n.Label
			if label == "" {
				label = n.ID
			}
			node := sub.Node(n.ID).
				Attr("shape", "box").
				Attr("style", "rounded,filled").
				Attr("fillcolor", "#f5f5f5").
				Attr("label", dot.HTML(html.EscapeString(label)+`<br/><font point-size="9">`+awsNodeTypes[n.Type].Class+`</font>`))
			nodes[n.ID] = node
		}
	}

	for _, e := range in.Edges {
		from, ok := nodes[e.From]
		if !ok {
			return "", renderErr("edge references unknown node: %s", e.From)
		}
		to, ok := nodes[e.To]
		if !ok {
			return "", renderErr("edge references unknown node: %s", e.To)
		}
		edge := g.Edge(from, to)
		if e.Label != "" {
			edge.Label(e.Label)
		}
	}

	return g.String(), nil
}
