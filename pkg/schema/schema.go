// Package schema holds rule-based validator of table-like records.
//
// Schema is declarative mapping of field name into validation rule. Rule may
// constrain field to single type, to one of many acceptable types, or to custom
// predicate. Record is the mapping being validated. Only fields present in the
// record are checked - schema constrains fields, it does not require them.
package schema

import "errors"

// ErrInvalidSchema occurs when schema is nil or has no rules.
var ErrInvalidSchema = errors.New("schema should be non-empty mapping")

// ErrInvalidRecord occurs when record is nil or has no fields.
var ErrInvalidRecord = errors.New("record should be non-empty mapping")

// ErrEmptyTypeList occurs when rule declares empty list of acceptable types.
var ErrEmptyTypeList = errors.New("empty list of acceptable types")

// ErrUnknownType occurs when rule declares type name outside of the supported set.
var ErrUnknownType = errors.New("unknown type name")

// ErrFieldViolation occurs when field value does not satisfy its rule.
var ErrFieldViolation = errors.New("field does not satisfy its rule")

// Schema is mapping of field name into Rule. It is never mutated by validation
// and may be reused across many Validate calls.
type Schema map[string]Rule

// Record is the table being validated. It is never mutated by validation.
type Record map[string]any
