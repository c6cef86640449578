package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wojsza/gmodutils/pkg/types"
)

// capturingSink collects diagnostic lines emitted by validator.
type capturingSink struct {
	lines []string
}

func (s *capturingSink) Print(info string) { s.lines = append(s.lines, info) }

func (s *capturingSink) IsOn() bool { return true }

func TestTableValidator_Validate(t *testing.T) {
	type args struct {
		schema Schema
		record Record
	}
	tests := []struct {
		name           string
		args           args
		want           bool
		wantViolations []string
		wantErr        error
	}{
		{
			name: "all fields satisfy their rules",
			args: args{
				schema: Schema{
					"name":    Of(types.String),
					"health":  Of(types.Number),
					"alive":   Of(types.Boolean),
					"loadout": Of(types.Table),
					"onSpawn": Of(types.Function),
				},
				record: Record{
					"name":    "rebel",
					"health":  100,
					"alive":   true,
					"loadout": map[string]any{"primary": "crowbar"},
					"onSpawn": func(v any) bool { return true },
				},
			},
			want: true,
		},
		{
			name: "field without rule is accepted no matter its value",
			args: args{
				schema: Schema{"name": Of(types.String)},
				record: Record{"name": "rebel", "unconstrained": make(chan int)},
			},
			want: true,
		},
		{
			name: "single type mismatch",
			args: args{
				schema: Schema{"a": Of(types.Number)},
				record: Record{"a": "x"},
			},
			want:           false,
			wantViolations: []string{"a (must be a number)"},
			wantErr:        ErrFieldViolation,
		},
		{
			name: "type alternatives reject value outside of the list",
			args: args{
				schema: Schema{"a": OneOf(types.String, types.Table)},
				record: Record{"a": 5},
			},
			want:           false,
			wantViolations: []string{"a (must be one of: string, table)"},
			wantErr:        ErrFieldViolation,
		},
		{
			name: "type alternatives accept first listed type",
			args: args{
				schema: Schema{"a": OneOf(types.String, types.Table)},
				record: Record{"a": "ok"},
			},
			want: true,
		},
		{
			name: "type alternatives accept second listed type",
			args: args{
				schema: Schema{"a": OneOf(types.String, types.Table)},
				record: Record{"a": map[string]any{}},
			},
			want: true,
		},
		{
			name: "violations of many fields aggregate",
			args: args{
				schema: Schema{
					"a": Of(types.Number),
					"b": Of(types.String),
					"c": Of(types.Boolean),
				},
				record: Record{"a": "x", "b": 1, "c": true},
			},
			want:           false,
			wantViolations: []string{"a (must be a number)", "b (must be a string)"},
			wantErr:        ErrFieldViolation,
		},
		{
			name: "empty type list aborts whole validation",
			args: args{
				schema: Schema{"a": OneOf(), "b": Of(types.Number)},
				record: Record{"a": 1, "b": "also wrong"},
			},
			want:           false,
			wantViolations: []string{"a (declares empty list of acceptable types)"},
			wantErr:        ErrEmptyTypeList,
		},
		{
			name: "unknown type name aborts whole validation",
			args: args{
				schema: Schema{"a": Of(types.DataType("vector"))},
				record: Record{"a": 1},
			},
			want:           false,
			wantViolations: []string{`a (declares unknown type "vector")`},
			wantErr:        ErrUnknownType,
		},
		{
			name: "predicate accepts value",
			args: args{
				schema: Schema{"a": Satisfies(func(v any) bool { n, ok := v.(int); return ok && n > 0 })},
				record: Record{"a": 1},
			},
			want: true,
		},
		{
			name: "predicate rejects value with empty constraint description",
			args: args{
				schema: Schema{"a": Satisfies(func(v any) bool { n, ok := v.(int); return ok && n > 0 })},
				record: Record{"a": -1},
			},
			want:           false,
			wantViolations: []string{"a"},
			wantErr:        ErrFieldViolation,
		},
		{
			name: "predicate is fallback for failed type match",
			args: args{
				schema: Schema{"a": Of(types.Number).OrSatisfies(func(v any) bool { return v == "zero" })},
				record: Record{"a": "zero"},
			},
			want: true,
		},
		{
			name: "predicate fallback is not consulted when type matches",
			args: args{
				schema: Schema{"a": Of(types.Number).OrSatisfies(func(v any) bool { return false })},
				record: Record{"a": 5},
			},
			want: true,
		},
		{
			name: "empty schema aborts",
			args: args{
				schema: Schema{},
				record: Record{"a": 1},
			},
			want:           false,
			wantViolations: []string{"schema should be non-empty mapping"},
			wantErr:        ErrInvalidSchema,
		},
		{
			name: "nil schema aborts",
			args: args{
				schema: nil,
				record: Record{"a": 1},
			},
			want:           false,
			wantViolations: []string{"schema should be non-empty mapping"},
			wantErr:        ErrInvalidSchema,
		},
		{
			name: "empty record aborts",
			args: args{
				schema: Schema{"a": Of(types.Number)},
				record: Record{},
			},
			want:           false,
			wantViolations: []string{"record should be non-empty mapping"},
			wantErr:        ErrInvalidRecord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := NewDefaultTableValidator()

			got, violations := tv.Validate(tt.args.schema, tt.args.record, "")
			if got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}

			rendered := make([]string, 0, len(violations))
			for _, v := range violations {
				rendered = append(rendered, v.String())
			}

			if tt.wantViolations == nil && len(rendered) > 0 {
				t.Errorf("Validate() violations = %v, want none", rendered)
			}

			if tt.wantViolations != nil && !reflect.DeepEqual(rendered, tt.wantViolations) {
				t.Errorf("Validate() violations = %v, want %v", rendered, tt.wantViolations)
			}

			if tt.wantErr != nil {
				for _, v := range violations {
					if !errors.Is(v, tt.wantErr) {
						t.Errorf("violation %v is not %v", v, tt.wantErr)
					}
				}
			}
		})
	}
}

func TestTableValidator_Validate_doesNotMutateInput(t *testing.T) {
	s := Schema{"a": Of(types.Number)}
	r := Record{"a": 1, "b": "x"}

	tv := NewDefaultTableValidator()

	for i := 0; i < 3; i++ {
		isValid, violations := tv.Validate(s, r, "settings")
		if !isValid || violations != nil {
			t.Errorf("schema should be reusable, got %v %v on run %d", isValid, violations, i)
		}
	}

	if len(s) != 1 || len(r) != 2 {
		t.Errorf("validator mutated its input")
	}
}

func TestTableValidator_Validate_emitsDiagnostics(t *testing.T) {
	tests := []struct {
		name      string
		schema    Schema
		record    Record
		label     string
		wantLines []string
	}{
		{
			name:      "field violations are printed with label",
			schema:    Schema{"a": Of(types.Number)},
			record:    Record{"a": "x"},
			label:     "config",
			wantLines: []string{"config: a (must be a number)"},
		},
		{
			name:      "abort is printed without label",
			schema:    Schema{},
			record:    Record{"a": "x"},
			wantLines: []string{"schema should be non-empty mapping"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &capturingSink{}
			tv := NewTableValidator(types.NewTableTypeMapper(), s)

			tv.Validate(tt.schema, tt.record, tt.label)

			if !reflect.DeepEqual(s.lines, tt.wantLines) {
				t.Errorf("diagnostic lines = %v, want %v", s.lines, tt.wantLines)
			}
		})
	}
}
