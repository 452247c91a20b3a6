package resumes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-vault/internal/shared/storage/object"
	"resume-vault/internal/shared/telemetry"
)

// ErrNotOwner reports that the requesting user does not own the resume.
var ErrNotOwner = errors.New("not authorized")

// ErrInvalidInput reports a missing upload file name.
var ErrInvalidInput = errors.New("file is required")

// Parser extracts structured fields from raw file bytes. The concrete
// implementation talks to an external service over HTTP.
type Parser interface {
	Parse(ctx context.Context, fileName string, r io.Reader) (ParsedData, error)
}

// Service contains business logic for resumes.
type Service struct {
	Store  object.ObjectStore
	Repo   Repo
	Parser Parser
}

// Upload stores the file, runs it through the parsing service and records
// the resume. The file is written first; if parsing fails afterwards the
// stored file is left behind, which callers accept as drift.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, error) {
	if fileName == "" {
		return Resume{}, ErrInvalidInput
	}

	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Resume{}, fmt.Errorf("store upload: %w", err)
	}

	stored, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return Resume{}, fmt.Errorf("reopen upload: %w", err)
	}
	defer stored.Close()

	parsed, err := s.Parser.Parse(ctx, fileName, stored)
	if err != nil {
		return Resume{}, fmt.Errorf("parse upload: %w", err)
	}

	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		StorageKey: storageKey,
		UploadedAt: time.Now().UTC(),
		Parsed:     parsed,
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, fmt.Errorf("create resume record: %w", err)
	}

	return resume, nil
}

// List returns all resumes owned by the user.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns a single resume after the ownership check.
func (s *Service) Get(ctx context.Context, id, userID string) (Resume, error) {
	return s.ownedByUser(ctx, id, userID)
}

// UpdateParsed replaces the parsed object wholesale. Callers wanting a
// partial merge must send the full merged object themselves.
func (s *Service) UpdateParsed(ctx context.Context, id, userID string, parsed ParsedData) (Resume, error) {
	resume, err := s.ownedByUser(ctx, id, userID)
	if err != nil {
		return Resume{}, err
	}
	if err := s.Repo.UpdateParsed(ctx, id, parsed); err != nil {
		return Resume{}, err
	}
	resume.Parsed = parsed
	return resume, nil
}

// Delete removes the backing file best-effort, then the record. A file
// that is already gone never blocks deletion of the record.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	resume, err := s.ownedByUser(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(ctx, resume.StorageKey); err != nil {
		telemetry.Warn("resume.file_delete_failed", map[string]any{
			"resume_id":   id,
			"storage_key": resume.StorageKey,
			"error":       err.Error(),
		})
	}

	return s.Repo.Delete(ctx, id)
}

// Download opens the backing file for streaming after the ownership check.
// A record whose file is missing on disk surfaces object.ErrNotFound.
func (s *Service) Download(ctx context.Context, id, userID string) (io.ReadCloser, string, error) {
	resume, err := s.ownedByUser(ctx, id, userID)
	if err != nil {
		return nil, "", err
	}

	rc, err := s.Store.Open(ctx, resume.StorageKey)
	if err != nil {
		return nil, "", err
	}
	return rc, resume.FileName, nil
}

// ownedByUser is the single authorization guard all per-resume operations
// go through: fetch, then compare owner against the requesting user.
func (s *Service) ownedByUser(ctx context.Context, id, userID string) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if resume.UserID != userID {
		return Resume{}, ErrNotOwner
	}
	return resume, nil
}
