package validation

import (
	"fmt"

	"github.com/forgo/roster/api/internal/model"
)

// Violation is a single broken rule on a single field. Type is a stable,
// machine-readable identifier; Message is for humans.
type Violation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// FieldViolations maps a dot-joined field path (or the "value" sentinel for
// the top level) to the ordered violations found there.
type FieldViolations map[string][]Violation

// TopLevelPath is the sentinel path used when the input itself, rather than
// one of its fields, breaks a rule.
const TopLevelPath = "value"

// Schema is a route contract: up to three sub-schemas for path parameters,
// query string, and request body. A nil sub-schema is permissive: the
// corresponding section passes through untouched.
type Schema struct {
	Params *ObjectSchema
	Query  *ObjectSchema
	Body   *ObjectSchema
}

// Input carries the raw request sections. Body is the decoded JSON value and
// may be of any type; Params and Query hold raw strings keyed by name.
type Input struct {
	Params map[string]any
	Query  map[string]any
	Body   any
}

// Normalized carries the validated and coerced sections. Strings are trimmed,
// numeric identifiers are int64, dates are time.Time.
type Normalized struct {
	Params map[string]any
	Query  map[string]any
	Body   map[string]any
}

// Validate checks every section of the input against the schema. All
// violations across all sections are collected before failing; within a
// single field the first broken rule stops that field's chain. On failure the
// returned error is a ValidationFailed ServiceError whose details map each
// offending section to its field violations. On success the returned
// Normalized holds the values downstream code must use.
func (s Schema) Validate(in Input) (Normalized, error) {
	norm := Normalized{}
	details := map[string]any{}

	// Path parameters come from a fixed route pattern, so unknown keys are
	// tolerated there; query and body reject them.
	norm.Params = runSection(s.Params, in.Params, false, details, "params")
	norm.Query = runSection(s.Query, in.Query, true, details, "query")

	if s.Body == nil {
		if body, ok := in.Body.(map[string]any); ok {
			norm.Body = body
		}
	} else if body, ok := objectOrNil(in.Body); ok {
		if vs := s.Body.validate(body, true); len(vs) > 0 {
			details["body"] = vs
		} else {
			norm.Body = body
		}
	} else {
		details["body"] = FieldViolations{
			TopLevelPath: {{Type: "object.base", Message: `"value" must be of type object`}},
		}
	}

	if len(details) > 0 {
		return Normalized{}, model.NewValidationFailed(
			"Validation failed, check details for more information", details)
	}
	return norm, nil
}

func runSection(schema *ObjectSchema, raw map[string]any, rejectUnknown bool, details map[string]any, section string) map[string]any {
	if schema == nil {
		return raw
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if vs := schema.validate(raw, rejectUnknown); len(vs) > 0 {
		details[section] = vs
		return nil
	}
	return raw
}

func objectOrNil(v any) (map[string]any, bool) {
	switch b := v.(type) {
	case nil:
		return map[string]any{}, true
	case map[string]any:
		return b, true
	default:
		return nil, false
	}
}

// ObjectSchema validates a flat object: an ordered set of named fields, each
// with its own rule chain.
type ObjectSchema struct {
	fields []*Field
}

// Object builds an ObjectSchema from the given fields. Field order is
// preserved so violation reporting is deterministic.
func Object(fields ...*Field) *ObjectSchema {
	return &ObjectSchema{fields: fields}
}

// ParamNames returns the field names, used by the HTTP adapter to know which
// path values to extract.
func (o *ObjectSchema) ParamNames() []string {
	names := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		names = append(names, f.name)
	}
	return names
}

// validate mutates values in place with normalized results and returns all
// violations. Within one field the chain stops at the first violation;
// validation always continues to the next field.
func (o *ObjectSchema) validate(values map[string]any, rejectUnknown bool) FieldViolations {
	violations := FieldViolations{}

	for _, f := range o.fields {
		raw, present := values[f.name]
		if !present || raw == nil {
			if f.required {
				violations[f.name] = []Violation{{
					Type:    "any.required",
					Message: fmt.Sprintf("%q is required", f.name),
				}}
			}
			continue
		}
		normalized, v := f.run(raw)
		if v != nil {
			violations[f.name] = []Violation{*v}
			continue
		}
		values[f.name] = normalized
	}

	if rejectUnknown {
		known := make(map[string]bool, len(o.fields))
		for _, f := range o.fields {
			known[f.name] = true
		}
		for name := range values {
			if !known[name] {
				violations[name] = append(violations[name], Violation{
					Type:    "object.unknown",
					Message: fmt.Sprintf("%q is not allowed", name),
				})
			}
		}
	}

	return violations
}
