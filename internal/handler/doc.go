// Package handler provides HTTP request handlers for the Roster API.
//
// Each handler struct serves one resource (people, groups, administrators)
// and depends only on the service layer. Routes are declared in NewRouter,
// which pairs every endpoint with its validation schema, so a handler method
// never sees a request that failed validation: it reads coerced values
// straight from the context helpers in the middleware package.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts a config struct
//   - Methods handle specific HTTP endpoints
//   - Success responses are the entities themselves as JSON
//   - Every failure goes through the Translator
//
// # Error Translation
//
// The Translator is the single exit point for errors. It maps ServiceError
// kinds to HTTP status codes and renders the uniform envelope
// {type, message, details}; outside production, internal errors also carry
// a stack trace. Unknown errors are logged and reported as a generic
// internal error so infrastructure details never reach a client.
package handler
