package editor

import "errors"

var (
	// ErrIndexOutOfRange signals an edit or delete referencing a
	// position outside the committed sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoActiveEdit signals a draft operation while the buffer is idle.
	ErrNoActiveEdit = errors.New("no active edit")
	// ErrStaleEdit signals a save whose target position was invalidated
	// by a delete in the same session. The buffer is reset and the
	// committed sequence is left untouched; the condition is recoverable.
	ErrStaleEdit = errors.New("edit refers to a stale position")
	// ErrUnknownField signals a draft or personal-info field name that
	// does not exist on the record.
	ErrUnknownField = errors.New("unknown field")
)
