package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Parsed data lives in a JSONB
// column so its shape can follow whatever the parsing service returns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, file_name, storage_key, parsed, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	parsed, err := json.Marshal(resume.Parsed)
	if err != nil {
		return fmt.Errorf("marshal parsed data: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.StorageKey,
		parsed,
		resume.UploadedAt,
	)
	return err
}

// ListByUser returns all resumes owned by the user. An empty slice is a
// valid, non-error result.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, parsed, uploaded_at
FROM resumes
WHERE user_id = $1`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// GetByID fetches a resume by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, parsed, uploaded_at
FROM resumes
WHERE id = $1`

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// UpdateParsed replaces the parsed object wholesale.
func (r *PGRepo) UpdateParsed(ctx context.Context, id string, parsed ParsedData) error {
	const query = `
UPDATE resumes
SET parsed = $1
WHERE id = $2`

	data, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("marshal parsed data: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, data, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record. ErrNotFound when no row matched, which is how
// the loser of a concurrent delete race finds out.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanResume(scan func(dest ...any) error) (Resume, error) {
	var resume Resume
	var parsed []byte
	if err := scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.StorageKey,
		&parsed,
		&resume.UploadedAt,
	); err != nil {
		return Resume{}, err
	}
	if len(parsed) > 0 {
		if err := json.Unmarshal(parsed, &resume.Parsed); err != nil {
			return Resume{}, fmt.Errorf("unmarshal parsed data: %w", err)
		}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
