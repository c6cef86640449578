package schema

import (
	"fmt"
	"strings"

	"github.com/wojsza/gmodutils/pkg/types"
)

// Predicate is custom validation logic for cases plain type matching cannot express.
type Predicate func(value any) bool

// Rule constrains single field of a record. Rule has three variants:
// single acceptable type (Of), list of acceptable types (OneOf)
// and custom predicate (Satisfies).
type Rule struct {
	// kinds are acceptable types of field value.
	kinds []types.DataType

	// alternatives distinguishes list variant from single type variant.
	alternatives bool

	// predicate is consulted when type matching fails or when rule has no types at all.
	predicate Predicate
}

// Of returns Rule accepting values of single type.
func Of(dt types.DataType) Rule {
	return Rule{kinds: []types.DataType{dt}}
}

// OneOf returns Rule accepting values of any of provided types.
func OneOf(dts ...types.DataType) Rule {
	return Rule{kinds: dts, alternatives: true}
}

// Satisfies returns Rule accepting values for which provided predicate returns true.
func Satisfies(p Predicate) Rule {
	return Rule{predicate: p}
}

// OrSatisfies returns copy of Rule with predicate attached as fallback,
// consulted only for values whose type did not match.
func (r Rule) OrSatisfies(p Predicate) Rule {
	r.predicate = p

	return r
}

// constraint renders human-readable expectation of Rule.
// Pure predicates render as empty description.
func (r Rule) constraint() string {
	if len(r.kinds) == 0 {
		return ""
	}

	if !r.alternatives {
		return fmt.Sprintf("must be a %s", r.kinds[0])
	}

	names := make([]string, 0, len(r.kinds))
	for _, k := range r.kinds {
		names = append(names, string(k))
	}

	return fmt.Sprintf("must be one of: %s", strings.Join(names, ", "))
}
