package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/roster/api/internal/model"
)

func violationsFor(t *testing.T, err error, section, path string) []Violation {
	t.Helper()
	se, ok := model.AsServiceError(err)
	require.True(t, ok, "expected a ServiceError, got %v", err)
	require.Equal(t, model.ErrorValidationFailed, se.Kind)

	fields, ok := se.Details[section].(FieldViolations)
	require.True(t, ok, "expected %s details, got %v", section, se.Details)
	vs := fields[path]
	require.NotEmpty(t, vs, "expected violations at %s.%s, got %v", section, path, fields)
	return vs
}

func TestValidate_EmptySchemaIsPermissive(t *testing.T) {
	norm, err := Schema{}.Validate(Input{
		Params: map[string]any{"anything": "goes"},
		Query:  map[string]any{"page": "2"},
		Body:   map[string]any{"free": "form"},
	})
	require.NoError(t, err)
	assert.Equal(t, "goes", norm.Params["anything"])
	assert.Equal(t, "form", norm.Body["free"])
}

func TestValidate_ParamsCoerceNumericStrings(t *testing.T) {
	s := Schema{Params: Object(ID("id").Required())}

	norm, err := s.Validate(Input{Params: map[string]any{"id": "42"}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), norm.Params["id"])
}

func TestValidate_IDRejections(t *testing.T) {
	s := Schema{Params: Object(ID("id").Required())}

	cases := map[string]struct {
		raw  any
		want string
	}{
		"non-numeric": {"abc", "number.base"},
		"fractional":  {1.5, "number.integer"},
		"zero":        {"0", "number.min"},
		"negative":    {"-3", "number.min"},
		"missing":     {nil, "any.required"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			params := map[string]any{}
			if tc.raw != nil {
				params["id"] = tc.raw
			}
			_, err := s.Validate(Input{Params: params})
			vs := violationsFor(t, err, "params", "id")
			assert.Equal(t, tc.want, vs[0].Type)
		})
	}
}

func TestValidate_RequiredAndTooShortAreDistinct(t *testing.T) {
	s := Schema{Body: Object(String("name").Required().Min(3).Max(100))}

	_, err := s.Validate(Input{Body: map[string]any{}})
	vs := violationsFor(t, err, "body", "name")
	assert.Equal(t, "any.required", vs[0].Type)

	_, err = s.Validate(Input{Body: map[string]any{"name": "   "}})
	vs = violationsFor(t, err, "body", "name")
	assert.Equal(t, "string.empty", vs[0].Type)

	_, err = s.Validate(Input{Body: map[string]any{"name": "ab"}})
	vs = violationsFor(t, err, "body", "name")
	assert.Equal(t, "string.min", vs[0].Type)
	assert.Contains(t, vs[0].Message, "at least 3")
}

func TestValidate_LengthBoundsAreInclusive(t *testing.T) {
	s := Schema{Body: Object(String("name").Required().Min(3).Max(10))}

	for _, ok := range []string{"abc", strings.Repeat("x", 10)} {
		_, err := s.Validate(Input{Body: map[string]any{"name": ok}})
		assert.NoError(t, err, "value %q should be accepted", ok)
	}
	for _, bad := range []string{"ab", strings.Repeat("x", 11)} {
		_, err := s.Validate(Input{Body: map[string]any{"name": bad}})
		assert.Error(t, err, "value %q should be rejected", bad)
	}
}

func TestValidate_TrimsBeforeChecks(t *testing.T) {
	s := Schema{Body: Object(String("name").Required().Min(3).Max(7))}

	norm, err := s.Validate(Input{Body: map[string]any{"name": "  Helpers  "}})
	require.NoError(t, err, "trimmed length is within bounds")
	assert.Equal(t, "Helpers", norm.Body["name"])
}

func TestValidate_AbortsEarlyWithinFieldOnly(t *testing.T) {
	s := Schema{Body: Object(
		String("name").Required().Min(3),
		String("email").Required().Email(),
	)}

	_, err := s.Validate(Input{Body: map[string]any{"name": "ab", "email": "nope"}})
	se, ok := model.AsServiceError(err)
	require.True(t, ok)

	fields := se.Details["body"].(FieldViolations)
	require.Len(t, fields["name"], 1, "only the first broken rule per field")
	require.Len(t, fields["email"], 1)
	assert.Equal(t, "string.min", fields["name"][0].Type)
	assert.Equal(t, "string.email", fields["email"][0].Type)
}

func TestValidate_BodyRejectsUnknownKeys(t *testing.T) {
	s := Schema{Body: Object(String("name").Required())}

	_, err := s.Validate(Input{Body: map[string]any{"name": "Ann Lee", "admin": true}})
	vs := violationsFor(t, err, "body", "admin")
	assert.Equal(t, "object.unknown", vs[0].Type)
}

func TestValidate_ParamsTolerateUnknownKeys(t *testing.T) {
	s := Schema{Params: Object(ID("id").Required())}

	_, err := s.Validate(Input{Params: map[string]any{"id": "7", "extra": "x"}})
	assert.NoError(t, err)
}

func TestValidate_NonObjectBodyUsesTopLevelSentinel(t *testing.T) {
	s := Schema{Body: Object(String("name").Required())}

	_, err := s.Validate(Input{Body: []any{"not", "an", "object"}})
	vs := violationsFor(t, err, "body", TopLevelPath)
	assert.Equal(t, "object.base", vs[0].Type)
}

func TestValidate_Dates(t *testing.T) {
	s := Schema{Body: Object(
		Date("birthdate").After(model.EarliestBirthdate).BeforeNow(),
	)}

	norm, err := s.Validate(Input{Body: map[string]any{"birthdate": "1990-06-15"}})
	require.NoError(t, err)
	parsed, ok := norm.Body["birthdate"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 1990, parsed.Year())

	_, err = s.Validate(Input{Body: map[string]any{"birthdate": "2100-01-01"}})
	vs := violationsFor(t, err, "body", "birthdate")
	assert.Equal(t, "date.less", vs[0].Type)

	_, err = s.Validate(Input{Body: map[string]any{"birthdate": "1900-01-01"}})
	vs = violationsFor(t, err, "body", "birthdate")
	assert.Equal(t, "date.greater", vs[0].Type)

	_, err = s.Validate(Input{Body: map[string]any{"birthdate": "not-a-date"}})
	vs = violationsFor(t, err, "body", "birthdate")
	assert.Equal(t, "date.format", vs[0].Type)
}

func TestValidate_CollectsAcrossSections(t *testing.T) {
	s := Schema{
		Params: Object(ID("id").Required()),
		Body:   Object(String("name").Required()),
	}

	_, err := s.Validate(Input{
		Params: map[string]any{"id": "zero"},
		Body:   map[string]any{},
	})
	se, ok := model.AsServiceError(err)
	require.True(t, ok)
	assert.Contains(t, se.Details, "params")
	assert.Contains(t, se.Details, "body")
}

func TestPersonCreateSchema(t *testing.T) {
	norm, err := Person.Create.Validate(Input{Body: map[string]any{
		"name":      "  Ann Lee  ",
		"email":     "ann@example.com",
		"birthdate": "1991-03-20",
	}})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", norm.Body["name"])

	_, err = Person.Create.Validate(Input{Body: map[string]any{
		"email": "ann@example.com",
	}})
	vs := violationsFor(t, err, "body", "name")
	assert.Equal(t, "any.required", vs[0].Type)
}

func TestAdministratorCreateSchema(t *testing.T) {
	_, err := Administrator.Create.Validate(Input{Body: map[string]any{
		"auth0id":  "auth0|abc123",
		"username": "ab",
		"email":    "admin@example.com",
	}})
	vs := violationsFor(t, err, "body", "username")
	assert.Equal(t, "string.min", vs[0].Type)

	_, err = Administrator.Create.Validate(Input{Body: map[string]any{
		"auth0id":  "auth0|abc123",
		"username": strings.Repeat("u", model.MaxUsernameLength+1),
		"email":    "admin@example.com",
	}})
	vs = violationsFor(t, err, "body", "username")
	assert.Equal(t, "string.max", vs[0].Type)
}
