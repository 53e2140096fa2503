package session

import (
	"sync"
	"time"

	"resume-editor/internal/editor"
	"resume-editor/internal/resume"
)

// State is the lifecycle phase of an editing session.
type State string

const (
	// StateEmpty means no document has been loaded or created yet.
	StateEmpty State = "empty"
	// StateLoading means an imported file is being parsed.
	StateLoading State = "loading"
	// StateActive means a document is loaded and editable.
	StateActive State = "active"
)

// Session is the lifecycle controller for one résumé being edited. It
// owns the document and the per-section edit buffers; every committed
// change flows through updateSection, so section editors never mutate
// the document directly. All methods are safe for concurrent use.
type Session struct {
	ID string

	mu         sync.Mutex
	state      State
	doc        resume.Document
	experience *editor.ListEditor[resume.Experience]
	education  *editor.ListEditor[resume.Education]
	enhancing  map[resume.SectionKind]bool
	createdAt  time.Time
	updatedAt  time.Time
}

// New constructs an empty session.
func New(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		state:      StateEmpty,
		doc:        resume.New(),
		experience: editor.NewListEditor[resume.Experience](),
		education:  editor.NewListEditor[resume.Education](),
		enhancing:  make(map[resume.SectionKind]bool),
		createdAt:  now,
		updatedAt:  now,
	}
}

// StartBlank activates the session with an empty document skeleton.
func (s *Session) StartBlank() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateActive {
		return ErrAlreadyActive
	}
	s.doc = resume.New()
	s.state = StateActive
	s.touch()
	return nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Document returns a snapshot of the current document.
func (s *Session) Document() resume.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// beginImport moves the session into the loading phase. Only a fresh
// session may import.
func (s *Session) beginImport() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEmpty {
		return ErrAlreadyActive
	}
	s.state = StateLoading
	s.touch()
	return nil
}

// completeImport installs the parsed document and activates the session.
func (s *Session) completeImport(doc resume.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Normalize()
	s.state = StateActive
	s.touch()
}

// failImport returns the session to the empty phase after a parse
// failure. The pre-import state is fully restored.
func (s *Session) failImport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEmpty
	s.touch()
}

// UpdateSection is the single commit path for document changes. Every
// editor save, skill change, personal field write, and enhancement
// result lands here.
func (s *Session) UpdateSection(kind resume.SectionKind, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateSectionLocked(kind, value)
}

func (s *Session) updateSectionLocked(kind resume.SectionKind, value any) error {
	if s.state != StateActive {
		return ErrNotActive
	}
	next, err := s.doc.WithSection(kind, value)
	if err != nil {
		return err
	}
	s.doc = next
	s.touch()
	return nil
}

// SetPersonalField writes one personal info field by its wire name.
func (s *Session) SetPersonalField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	info, err := editor.SetPersonalField(s.doc.PersonalInfo, field, value)
	if err != nil {
		return err
	}
	return s.updateSectionLocked(resume.SectionPersonalInfo, info)
}

// BeginEdit opens the section's edit buffer. Mode "create" opens a
// blank draft; mode "edit" copies the entry at index into the draft.
func (s *Session) BeginEdit(kind resume.SectionKind, mode string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	switch kind {
	case resume.SectionExperience:
		return beginEdit(s.experience, s.doc.Experience, mode, index)
	case resume.SectionEducation:
		return beginEdit(s.education, s.doc.Education, mode, index)
	default:
		return ErrSectionNotEditable
	}
}

func beginEdit[T any](ed *editor.ListEditor[T], current []T, mode string, index int) error {
	switch mode {
	case "create":
		ed.Add()
		return nil
	case "edit":
		return ed.Edit(current, index)
	default:
		return ErrUnknownMode
	}
}

// UpdateEditField writes one field of the active draft by its wire
// name. The committed document is untouched.
func (s *Session) UpdateEditField(kind resume.SectionKind, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	switch kind {
	case resume.SectionExperience:
		var fieldErr error
		err := s.experience.UpdateDraft(func(exp *resume.Experience) {
			fieldErr = editor.SetExperienceField(exp, field, value)
		})
		if err != nil {
			return err
		}
		return fieldErr
	case resume.SectionEducation:
		var fieldErr error
		err := s.education.UpdateDraft(func(edu *resume.Education) {
			fieldErr = editor.SetEducationField(edu, field, value)
		})
		if err != nil {
			return err
		}
		return fieldErr
	default:
		return ErrSectionNotEditable
	}
}

// SaveEdit commits the active draft through the section update path.
// A stale editing position resets the buffer and returns
// editor.ErrStaleEdit; the document is unchanged.
func (s *Session) SaveEdit(kind resume.SectionKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	switch kind {
	case resume.SectionExperience:
		next, err := s.experience.Save(s.doc.Experience)
		if err != nil {
			return err
		}
		return s.updateSectionLocked(kind, next)
	case resume.SectionEducation:
		next, err := s.education.Save(s.doc.Education)
		if err != nil {
			return err
		}
		return s.updateSectionLocked(kind, next)
	default:
		return ErrSectionNotEditable
	}
}

// CancelEdit discards the active draft.
func (s *Session) CancelEdit(kind resume.SectionKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	switch kind {
	case resume.SectionExperience:
		s.experience.Cancel()
	case resume.SectionEducation:
		s.education.Cancel()
	default:
		return ErrSectionNotEditable
	}
	return nil
}

// DeleteEntry removes the entry at index from the section, shifting
// later entries down. An edit buffer aimed at the removed entry or any
// shifted entry is reset.
func (s *Session) DeleteEntry(kind resume.SectionKind, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	switch kind {
	case resume.SectionExperience:
		next, err := s.experience.Delete(s.doc.Experience, index)
		if err != nil {
			return err
		}
		return s.updateSectionLocked(kind, next)
	case resume.SectionEducation:
		next, err := s.education.Delete(s.doc.Education, index)
		if err != nil {
			return err
		}
		return s.updateSectionLocked(kind, next)
	default:
		return ErrSectionNotEditable
	}
}

// AddSkill appends a trimmed skill token. Empty input is a silent
// no-op.
func (s *Session) AddSkill(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	next := editor.AddSkill(s.doc.Skills, text)
	return s.updateSectionLocked(resume.SectionSkills, next)
}

// RemoveSkill deletes the skill at index.
func (s *Session) RemoveSkill(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotActive
	}
	next, err := editor.RemoveSkill(s.doc.Skills, index)
	if err != nil {
		return err
	}
	return s.updateSectionLocked(resume.SectionSkills, next)
}

// BeginEnhance marks the section as enhancing and returns a snapshot of
// its current value for the enhancer call. The session lock is not held
// during the call itself; distinct sections may enhance concurrently,
// while a second request for the same section fails fast.
func (s *Session) BeginEnhance(kind resume.SectionKind) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return nil, ErrNotActive
	}
	var snapshot any
	switch kind {
	case resume.SectionExperience:
		snapshot = append([]resume.Experience{}, s.doc.Experience...)
	case resume.SectionEducation:
		snapshot = append([]resume.Education{}, s.doc.Education...)
	case resume.SectionSkills:
		snapshot = append([]string{}, s.doc.Skills...)
	default:
		return nil, ErrSectionNotEnhanceable
	}
	if s.enhancing[kind] {
		return nil, ErrEnhanceInFlight
	}
	s.enhancing[kind] = true
	return snapshot, nil
}

// CompleteEnhance commits the enhancement result for the section and
// clears its in-flight flag. The result replaces the section wholesale:
// concurrent manual edits to the same section are overwritten, which is
// the documented last-write-wins policy at section granularity.
func (s *Session) CompleteEnhance(kind resume.SectionKind, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.enhancing, kind)
	return s.updateSectionLocked(kind, value)
}

// FailEnhance clears the section's in-flight flag without touching the
// document.
func (s *Session) FailEnhance(kind resume.SectionKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.enhancing, kind)
}

func (s *Session) touch() {
	s.updatedAt = time.Now().UTC()
}
