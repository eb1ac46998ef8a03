package render

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	introspectColumnsQuery = `SELECT c.table_name, c.column_name, c.data_type
FROM information_schema.columns c
JOIN information_schema.tables t
  ON t.table_schema = c.table_schema AND t.table_name = c.table_name
WHERE c.table_schema = 'public' AND t.table_type = 'BASE TABLE'
ORDER BY c.table_name, c.ordinal_position`

	introspectKeysQuery = `SELECT tc.constraint_type, kcu.table_name, kcu.column_name,
       COALESCE(ccu.table_name, '')
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON kcu.constraint_schema = tc.constraint_schema AND kcu.constraint_name = tc.constraint_name
LEFT JOIN information_schema.constraint_column_usage ccu
  ON tc.constraint_type = 'FOREIGN KEY'
 AND ccu.constraint_schema = tc.constraint_schema AND ccu.constraint_name = tc.constraint_name
WHERE tc.table_schema = 'public' AND tc.constraint_type IN ('PRIMARY KEY', 'FOREIGN KEY')
ORDER BY kcu.table_name, kcu.ordinal_position`
)

// rowsQuerier is the part of *pgx.Conn used for introspection.
type rowsQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PgxIntrospector reads the public schema of a PostgreSQL database.
type PgxIntrospector struct {
	Timeout time.Duration
}

var pgxConnect = func(ctx context.Context, connString string) (rowsQuerier, func(context.Context) error, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Close, nil
}

func (p *PgxIntrospector) Introspect(ctx context.Context, databaseURL string) (*Schema, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	conn, closeConn, err := pgxConnect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = closeConn(context.Background()) }()

	return introspect(ctx, conn)
}

func introspect(ctx context.Context, q rowsQuerier) (*Schema, error) {
	s := &Schema{}
	index := map[string]int{}

	rows, err := q.Query(ctx, introspectColumnsQuery)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	for rows.Next() {
		var table, column, dataType string
		if err := rows.Scan(&table, &column, &dataType); err != nil {
			rows.Close()
			return nil, fmt.Errorf("columns scan: %w", err)
		}
		i, ok := index[table]
		if !ok {
			s.Tables = append(s.Tables, Table{Name: table})
			i = len(s.Tables) - 1
			index[table] = i
		}
		s.Tables[i].Columns = append(s.Tables[i].Columns, Column{Name: column, Type: dataType})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	rows, err = q.Query(ctx, introspectKeysQuery)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	defer rows.Close()

	seenRel := map[[2]string]struct{}{}
	for rows.Next() {
		var kind, table, column, refTable string
		if err := rows.Scan(&kind, &table, &column, &refTable); err != nil {
			return nil, fmt.Errorf("keys scan: %w", err)
		}
		i, ok := index[table]
		if !ok {
			continue
		}
		for c := range s.Tables[i].Columns {
			if s.Tables[i].Columns[c].Name != column {
				continue
			}
			if kind == "PRIMARY KEY" {
				s.Tables[i].Columns[c].PK = true
			} else {
				s.Tables[i].Columns[c].FK = true
			}
		}
		if kind == "FOREIGN KEY" && refTable != "" {
			if _, ok := index[refTable]; !ok {
				continue
			}
			key := [2]string{table, refTable}
			if _, dup := seenRel[key]; dup {
				continue
			}
			seenRel[key] = struct{}{}
			s.Relations = append(s.Relations, Relation{Left: table, LeftCard: "*", RightCard: "1", Right: refTable})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}

	if len(s.Tables) == 0 {
		return nil, fmt.Errorf("database has no tables in schema public")
	}
	return s, nil
}
