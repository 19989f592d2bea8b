package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devportfolio/portfolio-backend/internal/projects/domain"
	"github.com/devportfolio/portfolio-backend/internal/storage/postgres"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	conn *postgres.Connector
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(conn *postgres.Connector) *ProjectRepository {
	return &ProjectRepository{conn: conn}
}

// GetAll returns every project in primary-key order. An empty table yields
// an empty slice, not an error.
func (r *ProjectRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	db, err := r.conn.Connect()
	if err != nil {
		return nil, err
	}

	const q = `
SELECT id, title, description, image_url, github_url, live_url, created_at
FROM projects
ORDER BY id;
`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.GithubURL, &p.LiveURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the project with the given id, or (nil, nil) when no row
// matches. Absence is not an error.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	db, err := r.conn.Connect()
	if err != nil {
		return nil, err
	}

	const q = `
SELECT id, title, description, image_url, github_url, live_url, created_at
FROM projects
WHERE id = $1;
`
	var p domain.Project
	err = db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.GithubURL, &p.LiveURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Add inserts a new row. The store assigns id and created_at; both are
// written back into p on success.
func (r *ProjectRepository) Add(ctx context.Context, p *domain.Project) error {
	db, err := r.conn.Connect()
	if err != nil {
		return err
	}

	const q = `
INSERT INTO projects (title, description, image_url, github_url, live_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at;
`
	return db.QueryRowContext(ctx, q, p.Title, p.Description, p.ImageURL, p.GithubURL, p.LiveURL).
		Scan(&p.ID, &p.CreatedAt)
}

// Update replaces every mutable field of the row matching p.ID. Returns
// false when no row matched, true on exactly one row updated.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (bool, error) {
	db, err := r.conn.Connect()
	if err != nil {
		return false, err
	}

	const q = `
UPDATE projects
SET title = $2, description = $3, image_url = $4, github_url = $5, live_url = $6
WHERE id = $1;
`
	result, err := db.ExecContext(ctx, q, p.ID, p.Title, p.Description, p.ImageURL, p.GithubURL, p.LiveURL)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes the row with the given id. Returns false when no row matched.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	db, err := r.conn.Connect()
	if err != nil {
		return false, err
	}

	const q = `DELETE FROM projects WHERE id = $1;`
	result, err := db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
