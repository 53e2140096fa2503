package util

import (
	"errors"
	"strings"
)

var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName flattens path separators and rejects traversal
// patterns and control characters, so the result is safe to embed in a
// storage key.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := pathSeparators.Replace(strings.TrimSpace(name))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return "", errors.New("invalid file name")
		}
	}
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
