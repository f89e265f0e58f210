package repositories

import "errors"

// ErrNotFound is returned when a record does not exist. Handlers map it to
// HTTP 404.
var ErrNotFound = errors.New("record not found")
