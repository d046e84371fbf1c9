package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ExportRecord is one row of export history.
type ExportRecord struct {
	ID          string
	ProjectName string
	Format      string
	FileKey     string
	URL         string
	FileName    string
	CreatedAt   time.Time
}

// PostgresStore reads and writes export history.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Ping reports database reachability.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InsertExport records one completed export.
func (s *PostgresStore) InsertExport(ctx context.Context, rec ExportRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (id, project_name, format, file_key, url, file_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.ProjectName, rec.Format, rec.FileKey, rec.URL, rec.FileName, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert export %s: %w", rec.ID, err)
	}
	return nil
}

// ListExports returns the most recent exports for a project, newest
// first.
func (s *PostgresStore) ListExports(ctx context.Context, projectName string, limit int) ([]ExportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_name, format, file_key, url, file_name, created_at
		FROM exports
		WHERE project_name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, projectName, limit)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()
	return scanExports(rows)
}

// SearchExports matches export history by project or file name with a
// case-insensitive substring match. It backs the search fallback when
// the search index is unavailable.
func (s *PostgresStore) SearchExports(ctx context.Context, text, format string, limit, offset int) ([]ExportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, project_name, format, file_key, url, file_name, created_at
		FROM exports
		WHERE (project_name ILIKE '%' || $1 || '%' OR file_name ILIKE '%' || $1 || '%')
	`
	args := []any{text}
	if format != "" {
		query += ` AND format = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
		args = append(args, format, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search exports: %w", err)
	}
	defer rows.Close()
	return scanExports(rows)
}

func scanExports(rows *sql.Rows) ([]ExportRecord, error) {
	var records []ExportRecord
	for rows.Next() {
		var rec ExportRecord
		if err := rows.Scan(&rec.ID, &rec.ProjectName, &rec.Format, &rec.FileKey, &rec.URL, &rec.FileName, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate export rows: %w", err)
	}
	return records, nil
}
