package level

import "errors"

// Sentinel errors
var (
	ErrUnknownLevel   = errors.New("unknown level")
	ErrDuplicateLevel = errors.New("duplicate level")
)
