package schema

import (
	"fmt"
	"sort"

	"github.com/wojsza/gmodutils/pkg/debugger"
	"github.com/wojsza/gmodutils/pkg/types"
)

// sink is diagnostic output channel of validator.
type sink interface {
	// Print prints provided info.
	Print(info string)

	// IsOn tells whether diagnostic output is activated.
	IsOn() bool
}

// TableValidator is entity that has ability to check whether every field of a
// record satisfies the rule its schema declares for it. Validation never stops
// at first failing field - all field violations are aggregated. Structural
// precondition failures and schema-authoring errors abort whole validation
// with single violation instead.
type TableValidator struct {
	// mapper maps runtime value into its scripting runtime type.
	mapper types.Mapper

	// debugger is place where diagnostic lines are written.
	debugger sink
}

// NewDefaultTableValidator returns TableValidator with default type mapper and muted diagnostics.
func NewDefaultTableValidator() TableValidator {
	return NewTableValidator(types.NewTableTypeMapper(), debugger.NewDefault(false))
}

// NewTableValidator returns TableValidator with provided type mapper and diagnostic sink.
func NewTableValidator(m types.Mapper, d sink) TableValidator {
	return TableValidator{mapper: m, debugger: d}
}

// Validate checks record against schema. label names validated table in diagnostic lines
// and may be empty. First return value tells whether record is valid; second holds
// all found violations, nil on success.
//
// Fields of record without rule in schema are accepted. Schema does not
// enforce presence of fields it mentions.
func (tv TableValidator) Validate(s Schema, r Record, label string) (bool, []Violation) {
	if len(s) == 0 {
		return false, tv.abort(label, Violation{Err: ErrInvalidSchema})
	}

	if len(r) == 0 {
		return false, tv.abort(label, Violation{Err: ErrInvalidRecord})
	}

	var violations []Violation
	for field, value := range r {
		rule, isConstrained := s[field]
		if !isConstrained {
			// no rule means field is accepted, on purpose
			continue
		}

		if rule.alternatives && len(rule.kinds) == 0 {
			return false, tv.abort(label, Violation{
				Field:      field,
				Constraint: "declares empty list of acceptable types",
				Err:        ErrEmptyTypeList,
			})
		}

		for _, kind := range rule.kinds {
			if !kind.IsValidTableDataType() {
				return false, tv.abort(label, Violation{
					Field:      field,
					Constraint: fmt.Sprintf("declares unknown type %q", kind),
					Err:        ErrUnknownType,
				})
			}
		}

		if tv.satisfies(rule, value) {
			continue
		}

		violations = append(violations, Violation{
			Field:      field,
			Constraint: rule.constraint(),
			Err:        ErrFieldViolation,
		})
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool { return violations[i].Field < violations[j].Field })

		for _, v := range violations {
			tv.emit(label, v)
		}

		return false, violations
	}

	return true, nil
}

// satisfies tells whether value matches any of rule's types or, failing that,
// whether rule's predicate accepts it.
func (tv TableValidator) satisfies(rule Rule, value any) bool {
	valueKind := tv.mapper.Map(value)
	for _, kind := range rule.kinds {
		if valueKind == kind {
			return true
		}
	}

	if rule.predicate != nil {
		return rule.predicate(value)
	}

	return false
}

func (tv TableValidator) abort(label string, v Violation) []Violation {
	tv.emit(label, v)

	return []Violation{v}
}

func (tv TableValidator) emit(label string, v Violation) {
	if tv.debugger == nil || !tv.debugger.IsOn() {
		return
	}

	if label != "" {
		tv.debugger.Print(fmt.Sprintf("%s: %s", label, v.String()))

		return
	}

	tv.debugger.Print(v.String())
}
