package session

import (
	"errors"
	"testing"
	"time"

	"resume-editor/internal/editor"
	"resume-editor/internal/resume"
)

func activeSession(t *testing.T) *Session {
	t.Helper()
	sess := New("session-1", time.Now().UTC())
	if err := sess.StartBlank(); err != nil {
		t.Fatalf("StartBlank: %v", err)
	}
	return sess
}

func TestStartBlankProducesEmptyDocument(t *testing.T) {
	sess := New("session-1", time.Now().UTC())
	if sess.State() != StateEmpty {
		t.Fatalf("expected empty state, got %q", sess.State())
	}
	if err := sess.StartBlank(); err != nil {
		t.Fatalf("StartBlank: %v", err)
	}
	if sess.State() != StateActive {
		t.Fatalf("expected active state, got %q", sess.State())
	}

	doc := sess.Document()
	if doc.PersonalInfo != (resume.PersonalInfo{}) {
		t.Fatalf("expected empty personal info, got %+v", doc.PersonalInfo)
	}
	if len(doc.Experience) != 0 || len(doc.Education) != 0 || len(doc.Skills) != 0 {
		t.Fatalf("expected empty sections, got %+v", doc)
	}
}

func TestStartBlankOnActiveSession(t *testing.T) {
	sess := activeSession(t)
	if err := sess.StartBlank(); !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("expected ErrAlreadyActive, got %v", err)
	}
}

func TestOperationsRequireActiveState(t *testing.T) {
	sess := New("session-1", time.Now().UTC())

	checks := []struct {
		name string
		err  error
	}{
		{"SetPersonalField", sess.SetPersonalField("name", "Sarah")},
		{"BeginEdit", sess.BeginEdit(resume.SectionExperience, "create", 0)},
		{"SaveEdit", sess.SaveEdit(resume.SectionExperience)},
		{"AddSkill", sess.AddSkill("Go")},
		{"DeleteEntry", sess.DeleteEntry(resume.SectionExperience, 0)},
	}
	for _, check := range checks {
		if !errors.Is(check.err, ErrNotActive) {
			t.Fatalf("%s: expected ErrNotActive, got %v", check.name, check.err)
		}
	}
	if _, err := sess.BeginEnhance(resume.SectionSkills); !errors.Is(err, ErrNotActive) {
		t.Fatalf("BeginEnhance: expected ErrNotActive, got %v", err)
	}
}

func TestImportLifecycle(t *testing.T) {
	sess := New("session-1", time.Now().UTC())
	if err := sess.beginImport(); err != nil {
		t.Fatalf("beginImport: %v", err)
	}
	if sess.State() != StateLoading {
		t.Fatalf("expected loading state, got %q", sess.State())
	}
	if err := sess.beginImport(); !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("expected ErrAlreadyActive on second import, got %v", err)
	}

	doc := resume.New()
	doc.PersonalInfo.Name = "Sarah Johnson"
	sess.completeImport(doc)
	if sess.State() != StateActive {
		t.Fatalf("expected active state, got %q", sess.State())
	}
	if got := sess.Document().PersonalInfo.Name; got != "Sarah Johnson" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestFailImportRestoresEmptyState(t *testing.T) {
	sess := New("session-1", time.Now().UTC())
	if err := sess.beginImport(); err != nil {
		t.Fatalf("beginImport: %v", err)
	}
	sess.failImport()
	if sess.State() != StateEmpty {
		t.Fatalf("expected empty state, got %q", sess.State())
	}
	if err := sess.beginImport(); err != nil {
		t.Fatalf("expected retry to be possible, got %v", err)
	}
}

func TestCreateEditSaveFlow(t *testing.T) {
	sess := activeSession(t)
	if err := sess.BeginEdit(resume.SectionExperience, "create", 0); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	for field, value := range map[string]string{
		"company":     "Acme",
		"position":    "Engineer",
		"startDate":   "2020",
		"endDate":     "2021",
		"description": "Built things",
	} {
		if err := sess.UpdateEditField(resume.SectionExperience, field, value); err != nil {
			t.Fatalf("UpdateEditField(%s): %v", field, err)
		}
	}

	// Draft changes stay out of the document until save.
	if len(sess.Document().Experience) != 0 {
		t.Fatalf("draft leaked into document before save")
	}

	if err := sess.SaveEdit(resume.SectionExperience); err != nil {
		t.Fatalf("SaveEdit: %v", err)
	}
	exp := sess.Document().Experience
	if len(exp) != 1 {
		t.Fatalf("expected 1 experience entry, got %d", len(exp))
	}
	if exp[0].Company != "Acme" || exp[0].Description != "Built things" {
		t.Fatalf("unexpected entry %+v", exp[0])
	}

	view := sess.View()
	if view.Editors[string(resume.SectionExperience)].Mode != "idle" {
		t.Fatalf("expected idle buffer after save")
	}
}

func TestCancelEditDiscardsDraft(t *testing.T) {
	sess := activeSession(t)
	if err := sess.BeginEdit(resume.SectionEducation, "create", 0); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	if err := sess.UpdateEditField(resume.SectionEducation, "school", "Berkeley"); err != nil {
		t.Fatalf("UpdateEditField: %v", err)
	}
	if err := sess.CancelEdit(resume.SectionEducation); err != nil {
		t.Fatalf("CancelEdit: %v", err)
	}
	if len(sess.Document().Education) != 0 {
		t.Fatalf("cancel changed the committed document")
	}
	if err := sess.SaveEdit(resume.SectionEducation); !errors.Is(err, editor.ErrNoActiveEdit) {
		t.Fatalf("expected ErrNoActiveEdit after cancel, got %v", err)
	}
}

func TestStaleEditResetsBuffer(t *testing.T) {
	sess := activeSession(t)
	for _, company := range []string{"Acme", "Globex"} {
		if err := sess.BeginEdit(resume.SectionExperience, "create", 0); err != nil {
			t.Fatalf("BeginEdit: %v", err)
		}
		if err := sess.UpdateEditField(resume.SectionExperience, "company", company); err != nil {
			t.Fatalf("UpdateEditField: %v", err)
		}
		if err := sess.SaveEdit(resume.SectionExperience); err != nil {
			t.Fatalf("SaveEdit: %v", err)
		}
	}

	if err := sess.BeginEdit(resume.SectionExperience, "edit", 1); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	// The edited entry is deleted out from under the buffer.
	if err := sess.DeleteEntry(resume.SectionExperience, 1); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := sess.SaveEdit(resume.SectionExperience); !errors.Is(err, editor.ErrNoActiveEdit) {
		t.Fatalf("expected buffer reset by delete, got %v", err)
	}
	if len(sess.Document().Experience) != 1 || sess.Document().Experience[0].Company != "Acme" {
		t.Fatalf("unexpected document after delete: %+v", sess.Document().Experience)
	}
}

func TestDeleteEntryShiftsRemaining(t *testing.T) {
	sess := activeSession(t)
	for _, company := range []string{"Acme", "Globex", "Initech"} {
		if err := sess.BeginEdit(resume.SectionExperience, "create", 0); err != nil {
			t.Fatalf("BeginEdit: %v", err)
		}
		if err := sess.UpdateEditField(resume.SectionExperience, "company", company); err != nil {
			t.Fatalf("UpdateEditField: %v", err)
		}
		if err := sess.SaveEdit(resume.SectionExperience); err != nil {
			t.Fatalf("SaveEdit: %v", err)
		}
	}

	if err := sess.DeleteEntry(resume.SectionExperience, 0); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	exp := sess.Document().Experience
	if len(exp) != 2 || exp[0].Company != "Globex" || exp[1].Company != "Initech" {
		t.Fatalf("unexpected entries after delete: %+v", exp)
	}
}

func TestSkillsAddAndRemove(t *testing.T) {
	sess := activeSession(t)
	for _, text := range []string{"Python", "Go"} {
		if err := sess.AddSkill(text); err != nil {
			t.Fatalf("AddSkill(%q): %v", text, err)
		}
	}
	if err := sess.RemoveSkill(0); err != nil {
		t.Fatalf("RemoveSkill: %v", err)
	}
	skills := sess.Document().Skills
	if len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("unexpected skills %v", skills)
	}
}

func TestAddSkillTrimsAndIgnoresEmpty(t *testing.T) {
	sess := activeSession(t)
	for _, text := range []string{"", "   ", "  Go  "} {
		if err := sess.AddSkill(text); err != nil {
			t.Fatalf("AddSkill(%q): %v", text, err)
		}
	}
	skills := sess.Document().Skills
	if len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("unexpected skills %v", skills)
	}
}

func TestSetPersonalField(t *testing.T) {
	sess := activeSession(t)
	if err := sess.SetPersonalField("name", "Sarah Johnson"); err != nil {
		t.Fatalf("SetPersonalField: %v", err)
	}
	if err := sess.SetPersonalField("favoriteColor", "blue"); !errors.Is(err, editor.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if got := sess.Document().PersonalInfo.Name; got != "Sarah Johnson" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestBeginEnhanceConflicts(t *testing.T) {
	sess := activeSession(t)
	if err := sess.AddSkill("Go"); err != nil {
		t.Fatalf("AddSkill: %v", err)
	}

	snapshot, err := sess.BeginEnhance(resume.SectionSkills)
	if err != nil {
		t.Fatalf("BeginEnhance: %v", err)
	}
	if skills, ok := snapshot.([]string); !ok || len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("unexpected snapshot %v", snapshot)
	}

	if _, err := sess.BeginEnhance(resume.SectionSkills); !errors.Is(err, ErrEnhanceInFlight) {
		t.Fatalf("expected ErrEnhanceInFlight, got %v", err)
	}
	// A different section is independent.
	if _, err := sess.BeginEnhance(resume.SectionExperience); err != nil {
		t.Fatalf("BeginEnhance other section: %v", err)
	}
	if _, err := sess.BeginEnhance(resume.SectionPersonalInfo); !errors.Is(err, ErrSectionNotEnhanceable) {
		t.Fatalf("expected ErrSectionNotEnhanceable, got %v", err)
	}
}

func TestCompleteEnhanceCommitsWholesale(t *testing.T) {
	sess := activeSession(t)
	if err := sess.AddSkill("Go"); err != nil {
		t.Fatalf("AddSkill: %v", err)
	}
	if _, err := sess.BeginEnhance(resume.SectionSkills); err != nil {
		t.Fatalf("BeginEnhance: %v", err)
	}

	// A manual edit lands while the enhancement is in flight.
	if err := sess.AddSkill("Rust"); err != nil {
		t.Fatalf("AddSkill during enhance: %v", err)
	}

	if err := sess.CompleteEnhance(resume.SectionSkills, []string{"Go", "Kubernetes"}); err != nil {
		t.Fatalf("CompleteEnhance: %v", err)
	}
	skills := sess.Document().Skills
	if len(skills) != 2 || skills[0] != "Go" || skills[1] != "Kubernetes" {
		t.Fatalf("expected last-write-wins replacement, got %v", skills)
	}
	if len(sess.View().Enhancing) != 0 {
		t.Fatalf("in-flight flag not cleared")
	}
}

func TestFailEnhanceLeavesDocumentUntouched(t *testing.T) {
	sess := activeSession(t)
	if err := sess.AddSkill("Go"); err != nil {
		t.Fatalf("AddSkill: %v", err)
	}
	if _, err := sess.BeginEnhance(resume.SectionSkills); err != nil {
		t.Fatalf("BeginEnhance: %v", err)
	}
	sess.FailEnhance(resume.SectionSkills)

	skills := sess.Document().Skills
	if len(skills) != 1 || skills[0] != "Go" {
		t.Fatalf("document changed on failed enhance: %v", skills)
	}
	if _, err := sess.BeginEnhance(resume.SectionSkills); err != nil {
		t.Fatalf("expected retry after failure, got %v", err)
	}
}

func TestViewReportsEditorStateAndEnhancing(t *testing.T) {
	sess := activeSession(t)
	if err := sess.BeginEdit(resume.SectionExperience, "create", 0); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	if _, err := sess.BeginEnhance(resume.SectionSkills); err != nil {
		t.Fatalf("BeginEnhance: %v", err)
	}

	view := sess.View()
	if view.ID != "session-1" || view.State != StateActive {
		t.Fatalf("unexpected view header %+v", view)
	}
	buf := view.Editors[string(resume.SectionExperience)]
	if buf.Mode != "creating" {
		t.Fatalf("unexpected buffer mode %q", buf.Mode)
	}
	if buf.Draft == nil {
		t.Fatalf("expected draft in creating buffer")
	}
	if idle := view.Editors[string(resume.SectionEducation)]; idle.Mode != "idle" || idle.Draft != nil {
		t.Fatalf("unexpected idle buffer %+v", idle)
	}
	if len(view.Enhancing) != 1 || view.Enhancing[0] != string(resume.SectionSkills) {
		t.Fatalf("unexpected enhancing markers %v", view.Enhancing)
	}
}
