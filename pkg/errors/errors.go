package errors

import "errors"

// Error message constants for the impwrap application
const (
	// Wrap-mode resolution errors
	ErrMsgUnknownWrapMode = "unknown wrap mode"

	// Input validation errors
	ErrMsgInvalidLineLength = "line length must not be negative"
	ErrMsgMissingStatement  = "a statement head is required"
)

// ErrUnknownWrapMode is returned when a wrap-mode identifier is neither a
// recognized member name nor a valid ordinal.
var ErrUnknownWrapMode = errors.New(ErrMsgUnknownWrapMode)
