package engine

import "errors"

// Sentinel errors
var (
	ErrInvalidConfig     = errors.New("invalid level configuration")
	ErrUnknownAsset      = errors.New("unknown asset")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrNoPresentation    = errors.New("presentation is required")
)
