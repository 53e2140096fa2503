package session

import "errors"

var (
	// ErrNotFound indicates the session ID is unknown.
	ErrNotFound = errors.New("session not found")
	// ErrNotActive indicates the session has no document to edit yet.
	ErrNotActive = errors.New("session has no active document")
	// ErrAlreadyActive indicates an import was attempted on a session
	// that already holds a document.
	ErrAlreadyActive = errors.New("session already has a document")
	// ErrSectionNotEditable indicates the section has no entry editor
	// (personal info and skills use direct update paths).
	ErrSectionNotEditable = errors.New("section does not support entry editing")
	// ErrSectionNotEnhanceable indicates the section cannot be enhanced.
	ErrSectionNotEnhanceable = errors.New("section does not support enhancement")
	// ErrEnhanceInFlight indicates an enhancement is already running for
	// the section.
	ErrEnhanceInFlight = errors.New("enhancement already in progress for section")
	// ErrUnknownMode indicates an unrecognized edit mode was requested.
	ErrUnknownMode = errors.New("unknown edit mode")
)
