package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-editor/internal/resume"
)

func TestPGRepoCreateMarshalsPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := resume.New()
	doc.PersonalInfo.Name = "Sarah Johnson"
	doc.Skills = []string{"Go"}
	saved := SavedResume{
		ID:      "resume-1",
		Payload: doc,
		SavedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO saved_resumes").
		WithArgs(saved.ID, sqlmock.AnyArg(), saved.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), saved); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDUnmarshalsPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := resume.New()
	doc.PersonalInfo.Name = "Sarah Johnson"
	doc.Skills = []string{"Go", "SQL"}
	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	savedAt := time.Now().UTC().Truncate(time.Second)

	rows := sqlmock.NewRows([]string{"id", "payload", "saved_at"}).
		AddRow("resume-1", payload, savedAt)
	mock.ExpectQuery("SELECT id, payload, saved_at").
		WithArgs("resume-1").
		WillReturnRows(rows)

	saved, err := repo.GetByID(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if saved.ID != "resume-1" {
		t.Fatalf("unexpected id %q", saved.ID)
	}
	if saved.Payload.PersonalInfo.Name != "Sarah Johnson" {
		t.Fatalf("unexpected name %q", saved.Payload.PersonalInfo.Name)
	}
	if len(saved.Payload.Skills) != 2 || saved.Payload.Skills[0] != "Go" {
		t.Fatalf("unexpected skills %v", saved.Payload.Skills)
	}
	if !saved.SavedAt.Equal(savedAt) {
		t.Fatalf("unexpected savedAt %v", saved.SavedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, payload, saved_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload", "saved_at"}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	payload, err := json.Marshal(resume.New())
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	rows := sqlmock.NewRows([]string{"id", "payload", "saved_at"}).
		AddRow("resume-1", payload, time.Now().UTC())
	mock.ExpectQuery("SELECT id, payload, saved_at").
		WithArgs(100, 0).
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), 500, -3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
