package enhance

import (
	"fmt"
	"strings"

	"resume-editor/internal/resume"
)

// SerializeExperience renders one paragraph per entry, paragraphs
// separated by a double line break. The paragraph order establishes the
// positional pairing MergeExperience relies on.
func SerializeExperience(entries []resume.Experience) string {
	parts := make([]string, 0, len(entries))
	for _, exp := range entries {
		parts = append(parts, fmt.Sprintf("%s at %s: %s", exp.Position, exp.Company, exp.Description))
	}
	return strings.Join(parts, "\n\n")
}

// SerializeEducation renders one line per entry, with a GPA suffix only
// when one is present.
func SerializeEducation(entries []resume.Education) string {
	lines := make([]string, 0, len(entries))
	for _, edu := range entries {
		line := fmt.Sprintf("%s in %s from %s, graduated %s", edu.Degree, edu.Field, edu.School, edu.GraduationDate)
		if edu.GPA != "" {
			line += ", GPA: " + edu.GPA
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// SerializeSkills joins the skills with ", ".
func SerializeSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
