package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"resume-editor/internal/render"
	"resume-editor/internal/resume"
	"resume-editor/internal/shared/storage/object"
	"resume-editor/internal/shared/telemetry"
	"resume-editor/internal/shared/util"
	"resume-editor/internal/store"
)

// ContentTypeJSON is the media type of structured exports.
const ContentTypeJSON = "application/json"

// Service orchestrates persistence and export of résumé documents.
// Objects is optional; when set, rendered artifacts are archived to the
// object store as a side effect of export.
type Service struct {
	Repo    store.Repo
	Objects object.ObjectStore

	// Hooks for tests. When nil the real implementations are used.
	Now   func() time.Time
	NewID func() string
}

// NewService constructs a Service.
func NewService(repo store.Repo, objects object.ObjectStore) *Service {
	return &Service{Repo: repo, Objects: objects}
}

// Persist stores a snapshot of the document and returns the stored
// record, including its assigned ID and timestamp.
func (s *Service) Persist(ctx context.Context, doc resume.Document) (store.SavedResume, error) {
	saved := store.SavedResume{
		ID:      s.newID(),
		Payload: doc.Normalize(),
		SavedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, saved); err != nil {
		return store.SavedResume{}, fmt.Errorf("persist resume: %w", err)
	}
	return saved, nil
}

// List returns previously saved resumes, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]store.SavedResume, error) {
	return s.Repo.List(ctx, limit, offset)
}

// RenderDocument renders the document to its downloadable form. When an
// object store is configured the artifact is also archived under the
// session's namespace; archival failure does not fail the export.
func (s *Service) RenderDocument(ctx context.Context, sessionID string, doc resume.Document) (render.Artifact, error) {
	artifact, err := render.Document(doc)
	if err != nil {
		return render.Artifact{}, fmt.Errorf("render document: %w", err)
	}
	if s.Objects != nil {
		key := path.Join("exports", util.HashStorageKey(sessionID), artifact.FileName)
		if _, err := s.Objects.SaveWithKey(ctx, key, artifact.ContentType, bytes.NewReader(artifact.Data)); err != nil {
			telemetry.Error("export archive failed", map[string]any{"key": key, "err": err.Error()})
		}
	}
	return artifact, nil
}

// ExportJSON serializes the document as indented JSON with a dated
// file name.
func (s *Service) ExportJSON(doc resume.Document) (render.Artifact, error) {
	data, err := json.MarshalIndent(doc.Normalize(), "", "  ")
	if err != nil {
		return render.Artifact{}, fmt.Errorf("marshal document: %w", err)
	}
	return render.Artifact{
		Data:        data,
		FileName:    fmt.Sprintf("resume_%s.json", s.now().Format("2006-01-02")),
		ContentType: ContentTypeJSON,
	}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
