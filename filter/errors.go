package filter

import (
	"errors"
	"fmt"

	"github.com/birdie-ai/golibs/xerrors"
)

// ErrMalformedClause tags where-clause grammar violations. The filter
// grammar requires every clause level to be a single-key object: either
// one field comparison or one connective with its array of children.
var ErrMalformedClause = errors.New("malformed where clause")

// MalformedClauseError reports a where-clause grammar violation.
type MalformedClauseError struct {
	Reason string
}

func (e *MalformedClauseError) Error() string {
	return fmt.Sprintf("malformed where clause: %s", e.Reason)
}

func malformed(format string, args ...any) error {
	return xerrors.Tag(&MalformedClauseError{Reason: fmt.Sprintf(format, args...)}, ErrMalformedClause)
}
