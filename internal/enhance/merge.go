package enhance

import (
	"strings"

	"resume-editor/internal/resume"
)

// MergeExperience zips the original entries with the double-break
// separated paragraphs of the response, by position. Entry i gets
// paragraph i as its new description; entries past the end of the
// response keep their original description; paragraphs past the end of
// the entries are dropped. Every field other than description is
// preserved untouched.
func MergeExperience(entries []resume.Experience, response string) []resume.Experience {
	segments := strings.Split(response, "\n\n")
	merged := make([]resume.Experience, len(entries))
	for i, exp := range entries {
		if i < len(segments) {
			exp.Description = segments[i]
		}
		merged[i] = exp
	}
	return merged
}

// MergeSkills replaces the whole skills sequence with the trimmed,
// non-empty tokens of the response, split on commas and line breaks.
// This is a full replacement, not a positional merge.
func MergeSkills(response string) []string {
	tokens := strings.FieldsFunc(response, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	skills := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if trimmed := strings.TrimSpace(tok); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
