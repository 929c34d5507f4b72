package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forgo/roster/api/internal/model"
)

// SubjectKey is the context key for the authenticated subject (auth0id)
const SubjectKey contextKey = "subject"

// AuthConfig holds the settings for bearer token verification
type AuthConfig struct {
	Secret   []byte
	Issuer   string
	Audience string
}

// Auth returns a middleware that requires a valid HS256 bearer token.
// The token's subject is the caller's auth0id and is stored in the
// request context for GetSubject.
func Auth(cfg AuthConfig, errs ErrorWriter) Middleware {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				errs.WriteError(w, r, model.NewUnauthorized("missing authorization header"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				errs.WriteError(w, r, model.NewUnauthorized("invalid authorization header format"))
				return
			}

			token, err := parser.Parse(parts[1], func(t *jwt.Token) (any, error) {
				return cfg.Secret, nil
			})
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					errs.WriteError(w, r, model.NewUnauthorized("token expired"))
				case errors.Is(err, jwt.ErrTokenSignatureInvalid):
					errs.WriteError(w, r, model.NewUnauthorized("invalid token signature"))
				default:
					errs.WriteError(w, r, model.NewUnauthorized("invalid token"))
				}
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				errs.WriteError(w, r, model.NewUnauthorized("token has no subject"))
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject extracts the authenticated subject from context
func GetSubject(ctx context.Context) string {
	if subject, ok := ctx.Value(SubjectKey).(string); ok {
		return subject
	}
	return ""
}
