package models

import "errors"

// InsufficientContentError reports that the input text or the usable fragment
// count is below a stage's minimum threshold. It is the only error category the
// pipeline surfaces to callers; per-fragment failures are absorbed internally.
type InsufficientContentError struct {
	Reason string
}

// Error implements the error interface.
func (e *InsufficientContentError) Error() string {
	return "insufficient content: " + e.Reason
}

// IsInsufficientContent reports whether err is an InsufficientContentError.
func IsInsufficientContent(err error) bool {
	var ice *InsufficientContentError
	return errors.As(err, &ice)
}
