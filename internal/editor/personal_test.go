package editor

import (
	"errors"
	"testing"

	"resume-editor/internal/resume"
)

func TestSetPersonalField(t *testing.T) {
	info := resume.PersonalInfo{Name: "Ada"}

	got, err := SetPersonalField(info, "email", "ada@example.com")
	if err != nil {
		t.Fatalf("SetPersonalField: %v", err)
	}
	if got.Email != "ada@example.com" || got.Name != "Ada" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if info.Email != "" {
		t.Fatalf("input mutated")
	}

	if _, err := SetPersonalField(info, "nickname", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetExperienceField(t *testing.T) {
	var exp resume.Experience
	fields := map[string]string{
		"company":     "Acme",
		"position":    "Eng",
		"startDate":   "2020",
		"endDate":     "2021",
		"description": "Built things",
	}
	for field, value := range fields {
		if err := SetExperienceField(&exp, field, value); err != nil {
			t.Fatalf("field %s: %v", field, err)
		}
	}
	want := resume.Experience{Company: "Acme", Position: "Eng", StartDate: "2020", EndDate: "2021", Description: "Built things"}
	if exp != want {
		t.Fatalf("expected %+v, got %+v", want, exp)
	}
	if err := SetExperienceField(&exp, "salary", "1"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetEducationField(t *testing.T) {
	var edu resume.Education
	fields := map[string]string{
		"school":         "MIT",
		"degree":         "BS",
		"field":          "CS",
		"graduationDate": "2019",
		"gpa":            "3.9",
	}
	for field, value := range fields {
		if err := SetEducationField(&edu, field, value); err != nil {
			t.Fatalf("field %s: %v", field, err)
		}
	}
	want := resume.Education{School: "MIT", Degree: "BS", Field: "CS", GraduationDate: "2019", GPA: "3.9"}
	if edu != want {
		t.Fatalf("expected %+v, got %+v", want, edu)
	}
	if err := SetEducationField(&edu, "honors", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
