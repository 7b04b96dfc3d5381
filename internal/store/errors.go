package store

import "errors"

// ErrNotFound is returned by lookups that match nothing.
var ErrNotFound = errors.New("store: record not found")
