package editor

// ListEditor drives the add/edit/save/delete/cancel workflow for one
// list-of-records section (experience or education). It owns only the
// edit buffer; the committed sequence lives in the Document and is
// passed in and returned by every committing operation, so the session
// controller remains the single owner of document state.
type ListEditor[T any] struct {
	buf Buffer[T]
}

// NewListEditor returns an editor with an idle buffer.
func NewListEditor[T any]() *ListEditor[T] {
	return &ListEditor[T]{}
}

// Buffer exposes a read-only view of the edit buffer.
func (e *ListEditor[T]) Buffer() *Buffer[T] { return &e.buf }

// Add opens the buffer in creating mode with a blank draft. Any
// previous draft is discarded.
func (e *ListEditor[T]) Add() {
	e.buf.beginCreate()
}

// Edit copies the entry at index into the draft and opens the buffer in
// editing mode.
func (e *ListEditor[T]) Edit(current []T, index int) error {
	if index < 0 || index >= len(current) {
		return ErrIndexOutOfRange
	}
	e.buf.beginEdit(index, current[index])
	return nil
}

// UpdateDraft applies a mutation to the draft only. The committed
// sequence is never touched.
func (e *ListEditor[T]) UpdateDraft(mutate func(*T)) error {
	if e.buf.mode == ModeIdle {
		return ErrNoActiveEdit
	}
	mutate(&e.buf.draft)
	return nil
}

// Save commits the draft: append in creating mode, replace in editing
// mode. On success the buffer resets to idle and the complete new
// sequence is returned for the upward update path. A save against a
// position that no longer exists resets the buffer and returns
// ErrStaleEdit without touching the sequence.
func (e *ListEditor[T]) Save(current []T) ([]T, error) {
	switch e.buf.mode {
	case ModeCreating:
		next := make([]T, 0, len(current)+1)
		next = append(next, current...)
		next = append(next, e.buf.draft)
		e.buf.reset()
		return next, nil
	case ModeEditing:
		if e.buf.index >= len(current) {
			e.buf.reset()
			return nil, ErrStaleEdit
		}
		next := make([]T, len(current))
		copy(next, current)
		next[e.buf.index] = e.buf.draft
		e.buf.reset()
		return next, nil
	default:
		return nil, ErrNoActiveEdit
	}
}

// Delete removes the entry at index, shifting subsequent positional
// identities down by one, and returns the complete new sequence. If the
// buffer was editing the removed entry or any entry that shifted, it is
// reset to idle so it can never reference a stale position.
func (e *ListEditor[T]) Delete(current []T, index int) ([]T, error) {
	if index < 0 || index >= len(current) {
		return nil, ErrIndexOutOfRange
	}
	next := make([]T, 0, len(current)-1)
	next = append(next, current[:index]...)
	next = append(next, current[index+1:]...)

	if e.buf.mode == ModeEditing && e.buf.index >= index {
		e.buf.reset()
	}
	return next, nil
}

// Cancel discards the draft and resets the buffer. No effect on the
// committed sequence.
func (e *ListEditor[T]) Cancel() {
	e.buf.reset()
}
