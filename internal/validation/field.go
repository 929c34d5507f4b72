package validation

import (
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"strings"
	"time"
)

// A Field is one named entry in an ObjectSchema with an ordered rule chain.
// The first rule of a chain coerces the raw value into the field's canonical
// type; later rules check constraints against the coerced value.
type Field struct {
	name     string
	required bool
	rules    []rule
}

type rule func(v any) (any, *Violation)

// Required marks the field as mandatory. A missing field is reported as
// "any.required"; an empty string on a required string field is reported as
// "string.empty" so callers can tell the two apart.
func (f *Field) Required() *Field {
	f.required = true
	return f
}

func (f *Field) run(raw any) (any, *Violation) {
	v := raw
	for _, r := range f.rules {
		normalized, violation := r(v)
		if violation != nil {
			return nil, violation
		}
		v = normalized
	}
	return v, nil
}

func (f *Field) add(r rule) *Field {
	f.rules = append(f.rules, r)
	return f
}

// String declares a trimmed string field. Trimming happens as part of
// validation, so downstream logic and the store only ever see the trimmed
// value.
func String(name string) *Field {
	f := &Field{name: name}
	return f.add(func(v any) (any, *Violation) {
		s, ok := v.(string)
		if !ok {
			return nil, &Violation{
				Type:    "string.base",
				Message: fmt.Sprintf("%q must be a string", name),
			}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, &Violation{
				Type:    "string.empty",
				Message: fmt.Sprintf("%q is not allowed to be empty", name),
			}
		}
		return s, nil
	})
}

// Min sets the inclusive minimum length of a string field.
func (f *Field) Min(n int) *Field {
	name := f.name
	return f.add(func(v any) (any, *Violation) {
		if len([]rune(v.(string))) < n {
			return nil, &Violation{
				Type:    "string.min",
				Message: fmt.Sprintf("%q length must be at least %d characters long", name, n),
			}
		}
		return v, nil
	})
}

// Max sets the inclusive maximum length of a string field.
func (f *Field) Max(n int) *Field {
	name := f.name
	return f.add(func(v any) (any, *Violation) {
		if len([]rune(v.(string))) > n {
			return nil, &Violation{
				Type:    "string.max",
				Message: fmt.Sprintf("%q length must be less than or equal to %d characters long", name, n),
			}
		}
		return v, nil
	})
}

// Email requires the string to be a valid address.
func (f *Field) Email() *Field {
	name := f.name
	return f.add(func(v any) (any, *Violation) {
		addr, err := mail.ParseAddress(v.(string))
		if err != nil || addr.Address != v.(string) {
			return nil, &Violation{
				Type:    "string.email",
				Message: fmt.Sprintf("%q must be a valid email", name),
			}
		}
		return v, nil
	})
}

// ID declares a positive integer identifier. Numeric-looking strings coerce;
// fractional, zero, and negative values are violations.
func ID(name string) *Field {
	f := &Field{name: name}
	return f.add(func(v any) (any, *Violation) {
		n, violation := coerceInt64(name, v)
		if violation != nil {
			return nil, violation
		}
		if n < 1 {
			return nil, &Violation{
				Type:    "number.min",
				Message: fmt.Sprintf("%q must be greater than or equal to 1", name),
			}
		}
		return n, nil
	})
}

func coerceInt64(name string, v any) (int64, *Violation) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &Violation{
				Type:    "number.integer",
				Message: fmt.Sprintf("%q must be an integer", name),
			}
		}
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, &Violation{
				Type:    "number.base",
				Message: fmt.Sprintf("%q must be a number", name),
			}
		}
		return parsed, nil
	default:
		return 0, &Violation{
			Type:    "number.base",
			Message: fmt.Sprintf("%q must be a number", name),
		}
	}
}

// Date declares an ISO-8601 date field, normalized to time.Time in UTC.
func Date(name string) *Field {
	f := &Field{name: name}
	return f.add(func(v any) (any, *Violation) {
		t, ok := parseISODate(v)
		if !ok {
			return nil, &Violation{
				Type:    "date.format",
				Message: fmt.Sprintf("%q must be in ISO 8601 date format", name),
			}
		}
		return t.UTC(), nil
	})
}

// After requires the date to be strictly after the given instant.
func (f *Field) After(bound time.Time) *Field {
	name := f.name
	return f.add(func(v any) (any, *Violation) {
		if t := v.(time.Time); !t.After(bound) {
			return nil, &Violation{
				Type:    "date.greater",
				Message: fmt.Sprintf("%q must be greater than %q", name, bound.Format(time.RFC3339)),
			}
		}
		return v, nil
	})
}

// BeforeNow requires the date to be strictly in the past at validation time.
func (f *Field) BeforeNow() *Field {
	name := f.name
	return f.add(func(v any) (any, *Violation) {
		if t := v.(time.Time); !t.Before(time.Now()) {
			return nil, &Violation{
				Type:    "date.less",
				Message: fmt.Sprintf("%q must be less than %q", name, "now"),
			}
		}
		return v, nil
	})
}

func parseISODate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
