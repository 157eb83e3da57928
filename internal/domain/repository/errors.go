package repository

import "errors"

// Store-level sentinels shared by all implementations.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)
