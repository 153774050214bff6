package common

import "errors"

// ErrRecordNotFound is returned by every read and delete operation when the
// requested row does not exist. Connection and driver failures are returned
// wrapped instead, so callers can tell the two apart.
var ErrRecordNotFound = errors.New("record not found")
