package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError collects messages per field. The zero value is not usable,
// create it with NewValidationError.
type ValidationError struct {
	fields map[string][]string
	order  []string
}

func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

// Add records a message for field. Fields keep the order of their first message.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], message)
}

// Merge copies every message of other into e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for _, field := range other.order {
		for _, msg := range other.fields[field] {
			e.Add(field, msg)
		}
	}
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.order) > 0
}

// Fields returns a copy of the field to messages mapping.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for field, msgs := range e.fields {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// Messages flattens the violations into "field: message" lines in insertion order.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.order))
	for _, field := range e.order {
		for _, msg := range e.fields[field] {
			out = append(out, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return out
}

// OrNil returns nil when nothing was recorded, so the result can be returned as error directly.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := append([]string(nil), e.order...)
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
