package middleware

import (
	"context"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/validation"
)

// validatedKey is the context key for the normalized request input
const validatedKey contextKey = "validated"

// Validate runs a route's schema against the incoming request before the
// handler sees it. Path values, query parameters, and the JSON body are
// gathered into the schema's three sections; on failure the error writer
// renders the validation envelope, and on success the normalized values are
// stored in the request context for GetValidated and friends.
func Validate(schema validation.Schema, errs ErrorWriter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in := validation.Input{
				Params: map[string]any{},
				Query:  map[string]any{},
			}

			if schema.Params != nil {
				for _, name := range schema.Params.ParamNames() {
					if v := r.PathValue(name); v != "" {
						in.Params[name] = v
					}
				}
			}

			for name, values := range r.URL.Query() {
				if len(values) > 0 {
					in.Query[name] = values[0]
				}
			}

			if r.Body != nil {
				raw, err := io.ReadAll(r.Body)
				if err != nil {
					errs.WriteError(w, r, model.NewValidationFailed(
						"Validation failed, check details for more information",
						map[string]any{"body": validation.FieldViolations{
							validation.TopLevelPath: {{Type: "body.unreadable", Message: "request body could not be read"}},
						}}))
					return
				}
				if len(raw) > 0 {
					var body any
					if err := json.Unmarshal(raw, &body); err != nil {
						errs.WriteError(w, r, model.NewValidationFailed(
							"Validation failed, check details for more information",
							map[string]any{"body": validation.FieldViolations{
								validation.TopLevelPath: {{Type: "body.malformed", Message: "request body is not valid JSON"}},
							}}))
						return
					}
					in.Body = body
				}
			}

			norm, err := schema.Validate(in)
			if err != nil {
				errs.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), validatedKey, norm)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetValidated extracts the normalized request input from context
func GetValidated(ctx context.Context) validation.Normalized {
	if norm, ok := ctx.Value(validatedKey).(validation.Normalized); ok {
		return norm
	}
	return validation.Normalized{}
}

// ParamID extracts a coerced numeric path parameter from context
func ParamID(ctx context.Context, name string) int64 {
	if id, ok := GetValidated(ctx).Params[name].(int64); ok {
		return id
	}
	return 0
}

// ParamString extracts a normalized string path parameter from context
func ParamString(ctx context.Context, name string) string {
	if s, ok := GetValidated(ctx).Params[name].(string); ok {
		return s
	}
	return ""
}

// BindBody decodes the normalized body into target. The body already passed
// validation, so the round trip only re-shapes it into the request struct.
func BindBody(ctx context.Context, target any) error {
	body := GetValidated(ctx).Body
	if body == nil {
		body = map[string]any{}
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
