package repository

import "errors"

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")
