package files

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/dbx"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/models"
)

const fileColumns = `tenant_id, file_id, file_name, diagram_kind, storage_key, content_type, attributes, created_at, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, tenantID, fileID string) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
		WHERE tenant_id = $1 AND file_id = $2
		`
	return r.getOne(ctx, query, tenantID, fileID)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, tenantID, fileID string) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
		WHERE tenant_id = $1 AND file_id = $2
		FOR UPDATE
		`
	return r.getOne(ctx, query, tenantID, fileID)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.File, error) {
	f, err := scanFile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	return f, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, file *models.File) (bool, error) {
	attrs, err := encodeAttributes(file.Attributes)
	if err != nil {
		return false, err
	}

	query := `
		INSERT INTO files (` + fileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9)
		ON CONFLICT (tenant_id, file_id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query,
		file.TenantID, file.FileID, file.FileName, string(file.DiagramKind), file.StorageKey,
		file.ContentType, attrs, file.CreatedAt, file.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: rows affected error: %w", common.ErrStoreUnavailable, err)
	}
	switch n {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) Touch(ctx context.Context, tenantID, fileID, fileName, contentType string, attrs map[string]any, now time.Time) (*models.File, error) {
	encoded, err := encodeAttributes(attrs)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE files SET
			updated_at = GREATEST(updated_at, $3),
			file_name = COALESCE(NULLIF($4, ''), file_name),
			content_type = COALESCE(NULLIF($5, ''), content_type),
			attributes = attributes || $6::jsonb
		WHERE tenant_id = $1 AND file_id = $2
		RETURNING ` + fileColumns
	return r.getOne(ctx, query, tenantID, fileID, now, fileName, contentType, encoded)
}

func (r *PostgresRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
		WHERE tenant_id = $1
		ORDER BY updated_at DESC, file_id
		LIMIT $2 OFFSET $3
		`
	rows, err := r.db.QueryContext(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select files: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan file: %w", common.ErrStoreUnavailable, err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(row scanner) (*models.File, error) {
	var (
		f     models.File
		kind  string
		attrs []byte
	)
	if err := row.Scan(&f.TenantID, &f.FileID, &f.FileName, &kind, &f.StorageKey,
		&f.ContentType, &attrs, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.DiagramKind = models.DiagramKind(kind)
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &f.Attributes); err != nil {
			return nil, fmt.Errorf("decode attributes: %w", err)
		}
	}
	return &f, nil
}

func encodeAttributes(attrs map[string]any) (string, error) {
	if len(attrs) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("%w: metadata is not JSON-encodable: %w", common.ErrValidation, err)
	}
	return string(b), nil
}
