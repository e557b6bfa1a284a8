package engine

import "errors"

// ErrEntityNotFound is returned when mutating components of an absent entity
var ErrEntityNotFound = errors.New("entity not found")
