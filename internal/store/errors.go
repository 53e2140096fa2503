package store

import "errors"

// ErrNotFound indicates the saved resume does not exist.
var ErrNotFound = errors.New("saved resume not found")
