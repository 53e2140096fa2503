package resume

import "fmt"

// SectionKind identifies one of the four résumé sections. The wire
// values match the JSON field names of Document.
type SectionKind string

const (
	SectionPersonalInfo SectionKind = "personalInfo"
	SectionExperience   SectionKind = "experience"
	SectionEducation    SectionKind = "education"
	SectionSkills       SectionKind = "skills"
)

// ParseSectionKind maps a wire string to a SectionKind.
func ParseSectionKind(raw string) (SectionKind, error) {
	switch SectionKind(raw) {
	case SectionPersonalInfo, SectionExperience, SectionEducation, SectionSkills:
		return SectionKind(raw), nil
	default:
		return "", fmt.Errorf("unknown section: %q", raw)
	}
}

// ListSectionKinds returns the kinds that hold ordered sequences, i.e.
// every section except personal info.
func ListSectionKinds() []SectionKind {
	return []SectionKind{SectionExperience, SectionEducation, SectionSkills}
}
