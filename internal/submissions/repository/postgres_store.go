package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
)

const DefaultTable = "project_submissions"

// PostgresStore keeps projects as rows ordered by a bigserial sequence column.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgresStore creates a PostgresStore over table (quoted as an identifier).
func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresStore{db: db, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the projects table when it does not exist yet.
func (r *PostgresStore) EnsureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	seq         BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	file_path   TEXT NOT NULL,
	file_url    TEXT NOT NULL,
	video_link  TEXT,
	created_at  TIMESTAMPTZ NOT NULL
);`, r.table)

	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (r *PostgresStore) Load(ctx context.Context) ([]domain.Project, error) {
	q := fmt.Sprintf(`
SELECT title, description, file_path, file_url, video_link, created_at
FROM %s
ORDER BY seq ASC;`, r.table)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		var videoLink sql.NullString
		if err := rows.Scan(&p.Title, &p.Description, &p.File, &p.FileURL, &videoLink, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.VideoLink = videoLink.String
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces every row inside one transaction.
func (r *PostgresStore) Save(ctx context.Context, projects []domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s;`, r.table)); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	for _, p := range projects {
		if err := r.insert(ctx, tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit projects: %w", err)
	}
	return nil
}

func (r *PostgresStore) Append(ctx context.Context, project domain.Project) error {
	return r.insert(ctx, r.db, project)
}

func (r *PostgresStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *PostgresStore) insert(ctx context.Context, db execer, p domain.Project) error {
	q := fmt.Sprintf(`
INSERT INTO %s (title, description, file_path, file_url, video_link, created_at)
VALUES ($1, $2, $3, $4, $5, $6);`, r.table)

	videoLink := sql.NullString{String: p.VideoLink, Valid: p.VideoLink != ""}
	if _, err := db.ExecContext(ctx, q, p.Title, p.Description, p.File, p.FileURL, videoLink, p.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}
