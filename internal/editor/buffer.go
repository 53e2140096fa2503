package editor

// Mode is the state of an edit buffer. It is a tagged variant together
// with the index carried by Buffer: an index is only meaningful in
// ModeEditing, so states like "editing with no target" cannot be built
// through the Buffer API.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeEditing
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "idle"
	}
}

// Buffer holds the transient draft for one list-based section while a
// user adds or edits a single entry. It is not part of the Document;
// it is discarded on save or cancel.
type Buffer[T any] struct {
	mode  Mode
	index int
	draft T
}

// Mode returns the current buffer mode.
func (b *Buffer[T]) Mode() Mode { return b.mode }

// Index returns the target position and whether one exists (ModeEditing
// only).
func (b *Buffer[T]) Index() (int, bool) {
	if b.mode != ModeEditing {
		return 0, false
	}
	return b.index, true
}

// Draft returns the current draft value. Meaningful only while the
// buffer is active.
func (b *Buffer[T]) Draft() T { return b.draft }

func (b *Buffer[T]) beginCreate() {
	var zero T
	b.mode = ModeCreating
	b.index = 0
	b.draft = zero
}

func (b *Buffer[T]) beginEdit(index int, current T) {
	b.mode = ModeEditing
	b.index = index
	b.draft = current
}

func (b *Buffer[T]) reset() {
	var zero T
	b.mode = ModeIdle
	b.index = 0
	b.draft = zero
}
