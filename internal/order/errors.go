package order

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart           = errors.New("cart is empty, nothing to order")
	ErrSubmitInFlight      = errors.New("a submission is already in progress for this user")
	ErrMissingOrganization = errors.New("organization id is required")
)

// SubmitErrorKind classifies why a submission failed.
type SubmitErrorKind string

const (
	SubmitErrConnection SubmitErrorKind = "CONNECTION"
	SubmitErrRejected   SubmitErrorKind = "REJECTED"
	SubmitErrValidation SubmitErrorKind = "VALIDATION"
)

// SubmitError wraps a submission failure with its kind. The cart is always
// preserved when a SubmitError is returned, so the caller may retry the same
// built order.
type SubmitError struct {
	Kind SubmitErrorKind
	Err  error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("order submission failed (%s): %v", e.Kind, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

func NewSubmitError(kind SubmitErrorKind, err error) *SubmitError {
	return &SubmitError{Kind: kind, Err: err}
}
