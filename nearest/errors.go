package nearest

import "errors"

var (
	ErrEmptyIndex = errors.New("empty index")
	ErrBadK       = errors.New("k must be positive")
)
