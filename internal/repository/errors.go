package repository

import "errors"

// ErrNotFound is returned by lookups whose callers need to tell a missing
// row apart from an infrastructure failure. Listing queries keep the
// nil-without-error convention instead.
var ErrNotFound = errors.New("record not found")
