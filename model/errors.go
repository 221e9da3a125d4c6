package model

import (
	"errors"
	"fmt"

	"github.com/birdie-ai/golibs/xerrors"
)

// ErrUnknownField tags resolution failures for fields that are neither
// declared on the model nor the identity column. Callers match the kind
// with errors.Is and retrieve details with errors.As.
var ErrUnknownField = errors.New("unknown field")

// UnknownFieldError reports a field-resolution failure. Resolving an
// undeclared field fails rather than guessing, since a well-formed query
// against a nonexistent column would silently return wrong data instead
// of erroring remotely.
type UnknownFieldError struct {
	Model string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("model %s has no field %q", e.Model, e.Field)
}

func newUnknownFieldError(model, field string) error {
	return xerrors.Tag(&UnknownFieldError{Model: model, Field: field}, ErrUnknownField)
}
