package store

import (
	"time"

	"resume-editor/internal/resume"
)

// SavedResume is a persisted snapshot of a résumé document.
type SavedResume struct {
	ID      string          `json:"id"`
	Payload resume.Document `json:"payload"`
	SavedAt time.Time       `json:"savedAt"`
}
