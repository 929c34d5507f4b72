// Package middleware provides HTTP middleware for the Roster API.
//
// # Available Middleware
//
//   - RequestID: unique id per request, echoed in X-Request-ID
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a JSON error envelope
//   - CORS: origin allow-listing and preflight handling
//   - Compress: gzip response compression
//   - Validate: schema-driven request validation
//   - Auth: HS256 bearer token verification
//   - Metrics.Instrument: Prometheus request metrics
//
// # Validation
//
// Validate runs a route's validation.Schema before the handler sees the
// request. The three request sections (path values, query string, JSON
// body) are collected, validated, and normalized; handlers then read the
// coerced values through the context helpers:
//
//	id := middleware.ParamID(r.Context(), "id")
//	var req model.CreatePersonRequest
//	_ = middleware.BindBody(r.Context(), &req)
//
// A handler behind Validate never sees an invalid request.
//
// # Error Rendering
//
// Middlewares that reject requests do so through the ErrorWriter interface
// so every rejection uses the same envelope the handlers use.
package middleware
