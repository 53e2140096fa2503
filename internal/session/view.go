package session

import (
	"sort"
	"time"

	"resume-editor/internal/editor"
	"resume-editor/internal/resume"
)

// BufferView is the wire representation of one section's edit buffer.
// Index and Draft are present only while the buffer is active.
type BufferView struct {
	Mode  string `json:"mode"`
	Index *int   `json:"index,omitempty"`
	Draft any    `json:"draft,omitempty"`
}

// View is the wire representation of a session: the document plus
// per-section editor state and in-flight enhancement markers.
type View struct {
	ID        string                `json:"id"`
	State     State                 `json:"state"`
	Document  resume.Document       `json:"document"`
	Editors   map[string]BufferView `json:"editors"`
	Enhancing []string              `json:"enhancing"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// View returns a consistent snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	enhancing := make([]string, 0, len(s.enhancing))
	for kind := range s.enhancing {
		enhancing = append(enhancing, string(kind))
	}
	sort.Strings(enhancing)

	return View{
		ID:    s.ID,
		State: s.state,
		// Document is a value; slices are replaced, never mutated, so
		// sharing the backing arrays with the caller is safe.
		Document: s.doc,
		Editors: map[string]BufferView{
			string(resume.SectionExperience): bufferView(s.experience.Buffer()),
			string(resume.SectionEducation):  bufferView(s.education.Buffer()),
		},
		Enhancing: enhancing,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}

func bufferView[T any](buf *editor.Buffer[T]) BufferView {
	view := BufferView{Mode: buf.Mode().String()}
	if buf.Mode() == editor.ModeIdle {
		return view
	}
	if index, ok := buf.Index(); ok {
		view.Index = &index
	}
	draft := buf.Draft()
	view.Draft = draft
	return view
}
