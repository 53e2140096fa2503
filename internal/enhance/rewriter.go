package enhance

import (
	"context"
	"strings"

	"resume-editor/internal/resume"
)

// Rewriter is a local, deterministic enhancer used when no LLM provider
// is configured. It applies per-section phrase rewrites so the merge
// path and the rest of the editing flow are fully exercisable offline.
type Rewriter struct{}

// Enhance rewrites the serialized section text without leaving the
// process.
func (Rewriter) Enhance(ctx context.Context, kind resume.SectionKind, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch kind {
	case resume.SectionExperience:
		return rewriteExperience(text), nil
	case resume.SectionEducation:
		return rewriteEducation(text), nil
	case resume.SectionSkills:
		return rewriteSkills(text), nil
	default:
		return text, nil
	}
}

func rewriteExperience(text string) string {
	out := strings.ReplaceAll(text, "Worked on", "Successfully delivered")
	out = strings.ReplaceAll(out, "Responsible for", "Led initiatives in")
	out = strings.ReplaceAll(out, "Used", "Leveraged advanced")
	if !strings.Contains(out, "%") && strings.Contains(strings.ToLower(out), "increased") {
		out = strings.ReplaceAll(out, "increased", "increased by 25%")
	}
	return out
}

func rewriteEducation(text string) string {
	out := text
	if strings.Contains(out, "Computer Science") {
		out += ". Relevant coursework: Data Structures, Algorithms, Software Engineering, Database Systems."
	}
	return strings.ReplaceAll(out, "graduated", "graduated with academic excellence")
}

var skillBuckets = []struct {
	label string
	terms []string
}{
	{"Frontend", []string{"react", "javascript", "html", "css", "vue", "angular"}},
	{"Backend", []string{"python", "node", "java", "sql", "database", "go"}},
}

func rewriteSkills(text string) string {
	grouped := make(map[string][]string)
	for _, raw := range strings.Split(text, ",") {
		skill := strings.TrimSpace(raw)
		if skill == "" {
			continue
		}
		label := bucketFor(skill)
		grouped[label] = append(grouped[label], skill)
	}

	var parts []string
	for _, label := range []string{"Frontend", "Backend", "Other"} {
		if skills := grouped[label]; len(skills) > 0 {
			parts = append(parts, label+": "+strings.Join(skills, ", "))
		}
	}
	if len(parts) == 0 {
		return text
	}
	return strings.Join(parts, " | ")
}

func bucketFor(skill string) string {
	lower := strings.ToLower(skill)
	for _, bucket := range skillBuckets {
		for _, term := range bucket.terms {
			if strings.Contains(lower, term) {
				return bucket.label
			}
		}
	}
	return "Other"
}
