package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnknownVariant    = errors.New("unknown registration type")
	ErrUnknownDonor      = errors.New("unknown donor")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAlreadyFinalized  = errors.New("donation already finalized")
	ErrInvalidSignature  = errors.New("invalid payment signature")
	ErrGatewayFailure    = errors.New("payment gateway failure")
)

// FieldError describes a single invalid or missing request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field-level failure found in a request
// so clients can surface all problems in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Has reports whether the error mentions the given field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
