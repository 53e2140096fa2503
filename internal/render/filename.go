package render

import (
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9 \-_]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// SuggestedFileName derives a download file name from the candidate's
// name. Characters outside the safe set are removed and runs of
// whitespace collapse to a single underscore.
func SuggestedFileName(name string) string {
	safe := unsafeChars.ReplaceAllString(name, "")
	safe = whitespace.ReplaceAllString(strings.TrimSpace(safe), "_")
	if safe == "" {
		return "Resume" + Extension
	}
	return safe + "_Resume" + Extension
}
