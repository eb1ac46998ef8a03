package render

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	tableLine    = regexp.MustCompile(`^\[([^\]]+)\]\s*(\{.*\})?$`)
	relationLine = regexp.MustCompile(`^(\S+)\s+([?1*+])--([?1*+])\s+(\S+)\s*(\{.*\})?$`)
	titleLine    = regexp.MustCompile(`^title\s*\{\s*label\s*:\s*"([^"]*)".*\}$`)
	optionLabel  = regexp.MustCompile(`label\s*:\s*"([^"]*)"`)
)

// ParseERMarkup reads the ERAlchemy markup dialect:
//
//	[person]
//	*id {label: "int"}
//	name
//	+location_id
//
//	person *--1 location
//
// "*" marks a primary key column, "+" a foreign key, "#" starts a comment.
func ParseERMarkup(text string) (*Schema, error) {
	s := &Schema{}
	tables := map[string]int{}
	current := -1

	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := titleLine.FindStringSubmatch(line); m != nil {
			s.Title = m[1]
			continue
		}

		if m := tableLine.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if _, dup := tables[name]; dup {
				return nil, renderErr("line %d: table %q declared twice", lineNo, name)
			}
			s.Tables = append(s.Tables, Table{Name: name})
			current = len(s.Tables) - 1
			tables[name] = current
			continue
		}

		if m := relationLine.FindStringSubmatch(line); m != nil {
			s.Relations = append(s.Relations, Relation{
				Left: m[1], LeftCard: m[2], RightCard: m[3], Right: m[4],
			})
			continue
		}

		if current < 0 {
			return nil, renderErr("line %d: column %q outside of a table", lineNo, line)
		}
		s.Tables[current].Columns = append(s.Tables[current].Columns, parseColumn(line))
	}
	if err := sc.Err(); err != nil {
		return nil, renderErr("read markup: %v", err)
	}

	if len(s.Tables) == 0 {
		return nil, renderErr("markup declares no tables")
	}
	for _, r := range s.Relations {
		for _, name := range []string{r.Left, r.Right} {
			if _, ok := tables[name]; !ok {
				return nil, renderErr("relation references unknown table %q", name)
			}
		}
	}
	return s, nil
}

func parseColumn(line string) Column {
	var c Column

	if i := strings.Index(line, "{"); i >= 0 {
		if m := optionLabel.FindStringSubmatch(line[i:]); m != nil {
			c.Type = m[1]
		}
		line = strings.TrimSpace(line[:i])
	}

	for len(line) > 0 {
		switch line[0] {
		case '*':
			c.PK = true
		case '+':
			c.FK = true
		default:
			c.Name = line
			return c
		}
		line = line[1:]
	}
	return c
}
