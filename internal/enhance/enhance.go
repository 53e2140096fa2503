package enhance

import (
	"context"
	"errors"

	"resume-editor/internal/resume"
)

// ErrEmptySection is returned before any network call when the section
// has no content to enhance. It is a local validation error, not an
// enhancer failure.
var ErrEmptySection = errors.New("section is empty")

// Enhancer is the external text-improvement service. It receives the
// section kind and a plain-text rendering of the section and returns
// replacement plain text. Timeouts are the transport's concern; the
// orchestrator itself imposes none.
type Enhancer interface {
	Enhance(ctx context.Context, kind resume.SectionKind, text string) (string, error)
}

// Orchestrator drives enhancement calls and merges results back into
// structured section data. The merge policy is deliberately asymmetric
// across section kinds; see the Merge functions.
type Orchestrator struct {
	Enhancer Enhancer
}

// Experience serializes the entries, calls the enhancer, and patches
// each entry's description positionally from the response. All other
// fields are preserved. Returns the new sequence; the input is never
// mutated.
func (o *Orchestrator) Experience(ctx context.Context, entries []resume.Experience) ([]resume.Experience, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySection
	}
	enhanced, err := o.Enhancer.Enhance(ctx, resume.SectionExperience, SerializeExperience(entries))
	if err != nil {
		return nil, err
	}
	return MergeExperience(entries, enhanced), nil
}

// Education serializes the entries and calls the enhancer, but performs
// no merge: the structured sequence is returned unchanged regardless of
// the response. Education has no reliable way to map free text back
// onto degree records, so merge-back is intentionally not applied.
func (o *Orchestrator) Education(ctx context.Context, entries []resume.Education) ([]resume.Education, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySection
	}
	if _, err := o.Enhancer.Enhance(ctx, resume.SectionEducation, SerializeEducation(entries)); err != nil {
		return nil, err
	}
	return entries, nil
}

// Skills serializes the skill list, calls the enhancer, and replaces
// the entire sequence with the tokens split out of the response. Prior
// content and order are discarded.
func (o *Orchestrator) Skills(ctx context.Context, skills []string) ([]string, error) {
	if len(skills) == 0 {
		return nil, ErrEmptySection
	}
	enhanced, err := o.Enhancer.Enhance(ctx, resume.SectionSkills, SerializeSkills(skills))
	if err != nil {
		return nil, err
	}
	return MergeSkills(enhanced), nil
}
