package render

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/emicklei/dot"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

// ER input formats.
const (
	ERFormatMarkup        = "markup"
	ERFormatPostgreSQL    = "postgresql"
	ERFormatSQLite        = "sqlite"
	ERFormatSQLiteSQL     = "sqlite-sql"
	ERFormatPostgreSQLSQL = "postgresql-sql"
)

// ERInput is either schema markup or a database URL, depending on Format.
type ERInput struct {
	Format string
	Text   string
}

func (ERInput) Kind() models.DiagramKind { return models.KindER }

type Column struct {
	Name string
	Type string
	PK   bool
	FK   bool
}

type Table struct {
	Name    string
	Columns []Column
}

// Relation links two tables; cardinalities are one of "?", "1", "*", "+".
type Relation struct {
	Left, Right         string
	LeftCard, RightCard string
}

type Schema struct {
	Title     string
	Tables    []Table
	Relations []Relation
}

// SchemaIntrospector reads the schema of a live database.
type SchemaIntrospector interface {
	Introspect(ctx context.Context, databaseURL string) (*Schema, error)
}

type ERRenderer struct {
	runner       Runner
	introspector SchemaIntrospector
}

func NewERRenderer(runner Runner, introspector SchemaIntrospector) *ERRenderer {
	return &ERRenderer{runner: runner, introspector: introspector}
}

func (r *ERRenderer) Render(ctx context.Context, req Request) (*Artifact, error) {
	in, ok := req.Input.(ERInput)
	if !ok {
		return nil, fmt.Errorf("%w: expected er input, got %T", common.ErrValidation, req.Input)
	}

	schema, err := r.schema(ctx, in)
	if err != nil {
		return nil, err
	}
	return renderGraph(ctx, r.runner, buildERGraph(schema), req.OutputFormat)
}

func (r *ERRenderer) schema(ctx context.Context, in ERInput) (*Schema, error) {
	switch strings.ToLower(in.Format) {
	case ERFormatMarkup:
		return ParseERMarkup(in.Text)
	case ERFormatPostgreSQL:
		if err := CheckDatabaseURL(in.Text); err != nil {
			return nil, err
		}
		if r.introspector == nil {
			return nil, fmt.Errorf("%w: database introspection is disabled", common.ErrUnsupportedFormat)
		}
		s, err := r.introspector.Introspect(ctx, in.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to connect to database: %w", common.ErrRender, err)
		}
		return s, nil
	case ERFormatSQLite, ERFormatSQLiteSQL, ERFormatPostgreSQLSQL:
		return nil, fmt.Errorf("%w: er input format %q is not supported yet", common.ErrUnsupportedFormat, in.Format)
	default:
		return nil, fmt.Errorf("%w: er input format %q", common.ErrUnsupportedFormat, in.Format)
	}
}

var cardinalityLabels = map[string]string{
	"?": "0..1",
	"1": "1",
	"*": "0..N",
	"+": "1..N",
}

func buildERGraph(s *Schema) string {
	g := dot.NewGraph(dot.Undirected)
	g.Attr("rankdir", "LR")
	if s.Title != "" {
		g.Attr("label", s.Title)
		g.Attr("labelloc", "t")
	}

	nodes := map[string]dot.Node{}
	for _, t := range s.Tables {
		nodes[t.Name] = g.Node(t.Name).
			Attr("shape", "none").
			Attr("margin", "0").
			Attr("label", dot.HTML(tableLabel(t)))
	}

	for _, rel := range s.Relations {
		g.Edge(nodes[rel.Left], nodes[rel.Right]).
			Attr("taillabel", cardinalityLabels[rel.LeftCard]).
			Attr("headlabel", cardinalityLabels[rel.RightCard]).
			Attr("fontsize", "10")
	}

	return g.String()
}

func tableLabel(t Table) string {
	var b strings.Builder
	b.WriteString(`<table border="0" cellborder="1" cellspacing="0" cellpadding="4">`)
	fmt.Fprintf(&b, `<tr><td bgcolor="#e7e2dd"><b>%s</b></td></tr>`, html.EscapeString(t.Name))
	for _, c := range t.Columns {
		text := html.EscapeString(c.Name)
		if c.Type != "" {
			text += " [" + html.EscapeString(c.Type) + "]"
		}
		if c.PK {
			text = "<u>" + text + "</u>"
		}
		if c.FK {
			text = "<i>" + text + "</i>"
		}
		fmt.Fprintf(&b, `<tr><td align="left">%s</td></tr>`, text)
	}
	b.WriteString(`</table>`)
	return b.String()
}
