package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-editor/internal/resume"
)

// PGRepo implements Repo using Postgres. Payloads are stored as jsonb.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a saved resume.
func (r *PGRepo) Create(ctx context.Context, saved SavedResume) error {
	payload, err := json.Marshal(saved.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	const query = `
INSERT INTO saved_resumes (id, payload, saved_at)
VALUES ($1, $2, $3)`
	_, err = r.DB.ExecContext(ctx, query, saved.ID, payload, saved.SavedAt)
	return err
}

// GetByID returns a saved resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (SavedResume, error) {
	const query = `
SELECT id, payload, saved_at
FROM saved_resumes
WHERE id = $1
LIMIT 1`
	var (
		saved   SavedResume
		payload []byte
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&saved.ID, &payload, &saved.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SavedResume{}, ErrNotFound
		}
		return SavedResume{}, err
	}
	if err := json.Unmarshal(payload, &saved.Payload); err != nil {
		return SavedResume{}, fmt.Errorf("unmarshal payload: %w", err)
	}
	saved.Payload = saved.Payload.Normalize()
	return saved, nil
}

// List returns saved resumes ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]SavedResume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, payload, saved_at
FROM saved_resumes
ORDER BY saved_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedResume
	for rows.Next() {
		var (
			saved   SavedResume
			payload []byte
		)
		if err := rows.Scan(&saved.ID, &payload, &saved.SavedAt); err != nil {
			return nil, err
		}
		var doc resume.Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal payload: %w", err)
		}
		saved.Payload = doc.Normalize()
		out = append(out, saved)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
