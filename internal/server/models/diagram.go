package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
)

// DiagramKind is the closed set of diagram families the service renders.
type DiagramKind string

const (
	KindAWS  DiagramKind = "aws"
	KindER   DiagramKind = "er"
	KindJSON DiagramKind = "json"
)

// DiagramKinds lists every supported kind.
var DiagramKinds = []DiagramKind{KindAWS, KindER, KindJSON}

// ParseDiagramKind accepts a kind name case-insensitively.
func ParseDiagramKind(s string) (DiagramKind, error) {
	k := DiagramKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range DiagramKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: diagram kind %q", common.ErrUnsupportedFormat, s)
}
