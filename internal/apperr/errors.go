package apperr

import (
	"errors"
	"fmt"
)

// GenericMessage is shown to the client for anything that is not a validation failure.
const GenericMessage = "Interní chyba serveru."

// ValidationError is a client-caused failure. Message is already localized
// and safe to display.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation returns a ValidationError with the given message.
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// UpstreamServiceError wraps a failure of an external collaborator
// (QR renderer, ledger, email delivery).
type UpstreamServiceError struct {
	Service string
	Err     error
}

func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamServiceError) Unwrap() error { return e.Err }

// Upstream wraps err as an UpstreamServiceError. A nil err stays nil.
func Upstream(service string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamServiceError{Service: service, Err: err}
}

// InternalError marks anything unexpected; it always maps to the generic 500.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "internal: " + e.Err.Error() }

func (e *InternalError) Unwrap() error { return e.Err }

// Internal wraps err as an InternalError.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &InternalError{Err: err}
}

// AsValidation reports whether err carries a ValidationError and returns it.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsUpstream reports whether err carries an UpstreamServiceError.
func IsUpstream(err error) bool {
	var ue *UpstreamServiceError
	return errors.As(err, &ue)
}
