package caml

import (
	"errors"
	"fmt"

	"github.com/birdie-ai/golibs/xerrors"

	"github.com/dkrantsberg/camlquery/filter"
)

// Error tags for the translator's validation failures. All of them are
// raised synchronously with no partial output; a wrong-but-well-formed
// query could silently return incorrect rows, so the translator fails
// fast instead.
var (
	// ErrInvalidOperand tags operand values the translator cannot
	// render, including non-sequence operands for multi-value operators.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrInvalidOrder tags order specs with a bad token count or an
	// unrecognized direction keyword.
	ErrInvalidOrder = errors.New("invalid order spec")

	// ErrUnsupportedOperator tags filter operators with no CAML
	// rendering. Unknown or unmapped operators never degrade to an
	// empty tag.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

// InvalidOperandError reports an operand the translator cannot render.
type InvalidOperandError struct {
	Field  string
	Op     filter.Op
	Reason string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand for %s on field %q: %s", e.Op, e.Field, e.Reason)
}

func invalidOperand(field string, op filter.Op, format string, args ...any) error {
	return xerrors.Tag(&InvalidOperandError{
		Field:  field,
		Op:     op,
		Reason: fmt.Sprintf(format, args...),
	}, ErrInvalidOperand)
}

// InvalidOrderError reports a malformed order spec string.
type InvalidOrderError struct {
	Spec   string
	Reason string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid order spec %q: %s", e.Spec, e.Reason)
}

func invalidOrder(spec, format string, args ...any) error {
	return xerrors.Tag(&InvalidOrderError{
		Spec:   spec,
		Reason: fmt.Sprintf(format, args...),
	}, ErrInvalidOrder)
}

// UnsupportedOperatorError reports a filter operator that CAML cannot
// express.
type UnsupportedOperatorError struct {
	Field string
	Op    filter.Op
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("operator %s on field %q has no CAML rendering", e.Op, e.Field)
}

func unsupportedOperator(field string, op filter.Op) error {
	return xerrors.Tag(&UnsupportedOperatorError{Field: field, Op: op}, ErrUnsupportedOperator)
}
