package schema

import (
	"fmt"
	"strings"
)

// Violation describes that a specific field failed its rule or that whole
// validation aborted. Err holds category sentinel, one of:
// ErrInvalidSchema, ErrInvalidRecord, ErrEmptyTypeList, ErrUnknownType, ErrFieldViolation.
type Violation struct {
	// Field is name of offending field. Empty for structural precondition failures.
	Field string

	// Constraint is human-readable description of what was expected.
	Constraint string

	// Err is category sentinel of this violation.
	Err error
}

// String renders Violation in form of "field (must be a number)".
func (v Violation) String() string {
	if v.Field == "" {
		if v.Err != nil {
			return v.Err.Error()
		}

		return v.Constraint
	}

	if v.Constraint == "" {
		return v.Field
	}

	return fmt.Sprintf("%s (%s)", v.Field, v.Constraint)
}

// Unwrap exposes category sentinel so errors.Is works on Violation.
func (v Violation) Unwrap() error {
	return v.Err
}

// Error makes Violation usable as error value.
func (v Violation) Error() string {
	return v.String()
}

// Render joins violations into single human-readable report.
func Render(vs []Violation) string {
	lines := make([]string, 0, len(vs))
	for _, v := range vs {
		lines = append(lines, v.String())
	}

	return strings.Join(lines, ", ")
}
