package parse

import (
	"regexp"
	"strings"

	"resume-editor/internal/resume"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9 ().\-]{6,}[0-9]`)
)

// buildDocument maps extracted plain text onto a document skeleton.
// The first non-contact line becomes the name; an email and a phone
// number are matched anywhere in the text; a "Skills:" line is split on
// commas. Everything else is left empty for the editor.
func buildDocument(text string) resume.Document {
	doc := resume.New()

	doc.PersonalInfo.Email = emailPattern.FindString(text)
	doc.PersonalInfo.Phone = strings.TrimSpace(phonePattern.FindString(text))

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if doc.PersonalInfo.Name == "" && looksLikeName(line) {
			doc.PersonalInfo.Name = line
			continue
		}
		if rest, ok := cutPrefixFold(line, "skills"); ok {
			for _, tok := range strings.Split(rest, ",") {
				if skill := strings.TrimSpace(tok); skill != "" {
					doc.Skills = append(doc.Skills, skill)
				}
			}
		}
	}

	return doc
}

func looksLikeName(line string) bool {
	if len(line) > 60 || strings.ContainsAny(line, "@:") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if w[0] >= '0' && w[0] <= '9' {
			return false
		}
	}
	return true
}

// cutPrefixFold strips a case-insensitive "prefix:" heading and returns
// the remainder.
func cutPrefixFold(line, prefix string) (string, bool) {
	if len(line) <= len(prefix) || !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}
