package domain

import "errors"

// ErrNotFound is returned when a session, message, or song lookup misses.
var ErrNotFound = errors.New("domain: not found")
