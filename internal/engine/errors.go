package engine

import (
	"errors"
	"fmt"
)

// InputRejectedError is a local validation failure: nothing was
// mutated and no external call was made.
type InputRejectedError struct {
	Reason string
}

func (e InputRejectedError) Error() string {
	return e.Reason
}

// IsInputRejected reports whether err is a local validation rejection.
func IsInputRejected(err error) bool {
	var ir InputRejectedError
	return errors.As(err, &ir)
}

// ExternalCallError means an agent call produced no usable result.
// Progression state is untouched and the caller may retry.
type ExternalCallError struct {
	Op  string
	Err error
}

func (e ExternalCallError) Error() string {
	return fmt.Sprintf("%s: external call failed: %v", e.Op, e.Err)
}

func (e ExternalCallError) Unwrap() error {
	return e.Err
}

// PayloadError marks a malformed external payload. The payload is
// rejected whole; nothing is coerced into state.
type PayloadError struct {
	Field  string
	Reason string
}

func (e PayloadError) Error() string {
	return fmt.Sprintf("invalid payload field %q: %s", e.Field, e.Reason)
}
