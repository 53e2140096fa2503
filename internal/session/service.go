package session

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"resume-editor/internal/enhance"
	"resume-editor/internal/export"
	"resume-editor/internal/parse"
	"resume-editor/internal/render"
	"resume-editor/internal/resume"
	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/storage/object"
	"resume-editor/internal/shared/telemetry"
	"resume-editor/internal/store"
)

// Service orchestrates the operations that reach outside a session:
// file import, enhancement, persistence, and export. Objects is
// optional; when set, uploads are archived before parsing.
type Service struct {
	Sessions *Manager
	Parser   parse.Parser
	Enhance  *enhance.Orchestrator
	Export   *export.Service
	Objects  object.ObjectStore
}

// StartBlank creates a session with an empty editable document.
func (s *Service) StartBlank() (*Session, error) {
	sess := s.Sessions.Create()
	if err := sess.StartBlank(); err != nil {
		return nil, err
	}
	return sess, nil
}

// Import validates the upload, archives it when an object store is
// configured, parses it into a document, and returns the activated
// session. Validation failures happen before any session is created.
// A parse failure returns the session to its pre-import state.
func (s *Service) Import(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (*Session, error) {
	if err := parse.ValidateUpload(contentType, size); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, parse.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > parse.MaxUploadBytes {
		return nil, parse.ErrTooLarge
	}
	if len(data) == 0 {
		return nil, parse.ErrEmptyFile
	}

	sess := s.Sessions.Create()
	if err := sess.beginImport(); err != nil {
		return nil, err
	}

	if s.Objects != nil {
		if _, _, _, err := s.Objects.Save(ctx, sess.ID, fileName, bytes.NewReader(data)); err != nil {
			telemetry.Error("upload archive failed", map[string]any{"session_id": sess.ID, "err": err.Error()})
		}
	}

	doc, err := s.Parser.Parse(ctx, data, contentType, fileName)
	if err != nil {
		sess.failImport()
		s.Sessions.Remove(sess.ID)
		metrics.IncImportFailed()
		return nil, fmt.Errorf("parse resume: %w", err)
	}

	sess.completeImport(doc)
	metrics.IncImport()
	telemetry.Info("resume imported", map[string]any{
		"session_id": sess.ID,
		"file_name":  fileName,
		"size_bytes": len(data),
	})
	return sess, nil
}

// EnhanceSection runs the enhancement flow for one section. The session
// lock is released during the enhancer call so other sections stay
// editable; the result is committed last-write-wins when the call
// returns.
func (s *Service) EnhanceSection(ctx context.Context, id string, kind resume.SectionKind) (*Session, error) {
	sess, err := s.Sessions.Get(id)
	if err != nil {
		return nil, err
	}

	snapshot, err := sess.BeginEnhance(kind)
	if err != nil {
		return nil, err
	}
	metrics.IncEnhanceStarted()
	startedMs := metrics.NowMillis()

	var value any
	switch kind {
	case resume.SectionExperience:
		value, err = s.Enhance.Experience(ctx, snapshot.([]resume.Experience))
	case resume.SectionEducation:
		value, err = s.Enhance.Education(ctx, snapshot.([]resume.Education))
	case resume.SectionSkills:
		value, err = s.Enhance.Skills(ctx, snapshot.([]string))
	}
	if err != nil {
		sess.FailEnhance(kind)
		metrics.IncEnhanceFailed()
		metrics.ObserveEnhanceDurationMs(metrics.NowMillis() - startedMs)
		return nil, err
	}

	if err := sess.CompleteEnhance(kind, value); err != nil {
		return nil, err
	}
	metrics.IncEnhanceCompleted()
	metrics.ObserveEnhanceDurationMs(metrics.NowMillis() - startedMs)
	return sess, nil
}

// Save persists a snapshot of the session's document.
func (s *Service) Save(ctx context.Context, id string) (store.SavedResume, error) {
	sess, err := s.Sessions.Get(id)
	if err != nil {
		return store.SavedResume{}, err
	}
	if sess.State() != StateActive {
		return store.SavedResume{}, ErrNotActive
	}
	return s.Export.Persist(ctx, sess.Document())
}

// ExportDocument renders the session's document to its downloadable
// form.
func (s *Service) ExportDocument(ctx context.Context, id string) (render.Artifact, error) {
	sess, err := s.Sessions.Get(id)
	if err != nil {
		return render.Artifact{}, err
	}
	if sess.State() != StateActive {
		return render.Artifact{}, ErrNotActive
	}
	return s.Export.RenderDocument(ctx, sess.ID, sess.Document())
}

// ExportJSON serializes the session's document as structured JSON.
func (s *Service) ExportJSON(ctx context.Context, id string) (render.Artifact, error) {
	sess, err := s.Sessions.Get(id)
	if err != nil {
		return render.Artifact{}, err
	}
	if sess.State() != StateActive {
		return render.Artifact{}, ErrNotActive
	}
	return s.Export.ExportJSON(sess.Document())
}
