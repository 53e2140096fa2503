package editor

import "strings"

// AddSkill trims the input and appends it to the sequence. Empty or
// whitespace-only input is a silent no-op: the original sequence is
// returned unchanged.
func AddSkill(current []string, text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return current
	}
	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, trimmed)
	return next
}

// RemoveSkill removes the skill at index, shifting subsequent entries
// down by one.
func RemoveSkill(current []string, index int) ([]string, error) {
	if index < 0 || index >= len(current) {
		return nil, ErrIndexOutOfRange
	}
	next := make([]string, 0, len(current)-1)
	next = append(next, current[:index]...)
	next = append(next, current[index+1:]...)
	return next, nil
}
