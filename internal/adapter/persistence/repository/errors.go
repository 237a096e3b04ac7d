package repository

import "errors"

// ErrEmptyKey is returned by every driver for a blank key.
var ErrEmptyKey = errors.New("repository: empty key")
