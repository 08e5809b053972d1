package common

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrAlreadyExists = errors.New("record already exists")

// LookupAttempt is one identity-field lookup the resolver tried before
// giving up. Kept so operators can see exactly which strategy failed.
type LookupAttempt struct {
	Field string
	Value string
}

type ReferenceNotFoundError struct {
	Table    string
	Attempts []LookupAttempt
}

func (e *ReferenceNotFoundError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("no %s reference matched", e.Table))

	for i, attempt := range e.Attempts {
		if i == 0 {
			sb.WriteString(": tried ")
		} else {
			sb.WriteString(", ")
		}

		sb.WriteString(fmt.Sprintf("%s=%q", attempt.Field, attempt.Value))
	}

	return sb.String()
}

func NewReferenceNotFound(table string, attempts []LookupAttempt) error {
	return errors.WithStack(&ReferenceNotFoundError{
		Table:    table,
		Attempts: attempts,
	})
}

func IsReferenceNotFound(err error) bool {
	var target *ReferenceNotFoundError

	return errors.As(err, &target)
}

// AmbiguousReferenceError reports a name lookup that matched more than
// one row. Returning an arbitrary row would silently bind the wrong
// entity, so this is surfaced as a record-level failure.
type AmbiguousReferenceError struct {
	Table   string
	Field   string
	Value   string
	Matches int
}

func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("%s lookup %s=%q matched %d rows, expected exactly one",
		e.Table, e.Field, e.Value, e.Matches)
}

type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func NewInvalidInputf(format string, args ...interface{}) error {
	return errors.WithStack(&InvalidInputError{
		Reason: fmt.Sprintf(format, args...),
	})
}
