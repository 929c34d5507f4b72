package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/validation"
)

// envelopeWriter is a minimal ErrorWriter for tests. It mirrors the
// handler package's translation of ServiceError kinds to status codes.
type envelopeWriter struct{}

func (envelopeWriter) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	se, ok := model.AsServiceError(err)
	if !ok {
		se = model.NewInternal("An unexpected error occurred")
	}
	status := http.StatusInternalServerError
	switch se.Kind {
	case model.ErrorValidationFailed:
		status = http.StatusBadRequest
	case model.ErrorUnauthorized:
		status = http.StatusUnauthorized
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorEnvelope{
		Type:    string(se.Kind),
		Message: se.Message,
		Details: se.Details,
	})
}

func TestChain_AppliesInOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "fixed-id", got)
}

func TestRecovery_ReturnsEnvelope(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", envelope.Type)
	assert.NotNil(t, envelope.Details)
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/people", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := CORS([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/people", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestValidate_NormalizesIntoContext(t *testing.T) {
	schema := validation.Schema{
		Params: validation.Object(validation.ID("id").Required()),
		Body:   validation.Object(validation.String("name").Required().Min(3)),
	}

	var gotID int64
	var gotName string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ParamID(r.Context(), "id")
		var body struct {
			Name string `json:"name"`
		}
		require.NoError(t, BindBody(r.Context(), &body))
		gotName = body.Name
	})

	mux := http.NewServeMux()
	mux.Handle("PUT /api/people/{id}", Validate(schema, envelopeWriter{})(handler))

	req := httptest.NewRequest(http.MethodPut, "/api/people/42", strings.NewReader(`{"name":"  Ada  "}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, "Ada", gotName, "string values are trimmed before the handler sees them")
}

func TestValidate_RejectsInvalidInput(t *testing.T) {
	schema := validation.Schema{
		Params: validation.Object(validation.ID("id").Required()),
	}

	mux := http.NewServeMux()
	mux.Handle("GET /api/people/{id}", Validate(schema, envelopeWriter{})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("invalid request must not reach the handler")
		})))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/people/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_FAILED", envelope.Type)
	assert.Contains(t, envelope.Details, "params")
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	schema := validation.Schema{
		Body: validation.Object(validation.String("name").Required()),
	}

	handler := Validate(schema, envelopeWriter{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("malformed body must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/people", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func signToken(t *testing.T, cfg AuthConfig, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(cfg.Secret)
	require.NoError(t, err)
	return signed
}

func TestAuth_ValidToken(t *testing.T) {
	cfg := AuthConfig{Secret: []byte("test-secret"), Issuer: "roster-api", Audience: "roster"}

	var subject string
	handler := Auth(cfg, envelopeWriter{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = GetSubject(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/administrators", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, "auth0|7", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "auth0|7", subject)
}

func TestAuth_Rejections(t *testing.T) {
	cfg := AuthConfig{Secret: []byte("test-secret"), Issuer: "roster-api", Audience: "roster"}
	otherSecret := AuthConfig{Secret: []byte("wrong"), Issuer: cfg.Issuer, Audience: cfg.Audience}

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "missing authorization header"},
		{"not bearer", "Basic abc", "invalid authorization header format"},
		{"expired", "Bearer " + signToken(t, cfg, "auth0|7", time.Now().Add(-time.Hour)), "token expired"},
		{"wrong signature", "Bearer " + signToken(t, otherSecret, "auth0|7", time.Now().Add(time.Hour)), "invalid token signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Auth(cfg, envelopeWriter{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("unauthorized request must not reach the handler")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/administrators", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var envelope model.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, "UNAUTHORIZED", envelope.Type)
			assert.Equal(t, tt.message, envelope.Message)
		})
	}
}
