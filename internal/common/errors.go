package common

import "errors"

var (
	// ErrAlreadyExists is returned by storage when a unique constraint rejects a write.
	ErrAlreadyExists = errors.New("already exists")
)
