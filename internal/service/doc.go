// Package service implements the business logic layer for the Roster API.
//
// Services sit between HTTP handlers and storage. Each service depends on
// the store interfaces declared in this package, never on a concrete
// backend, so the same logic runs against SurrealDB, PostgreSQL, or the
// in-memory stores.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Store interfaces are declared next to the service that owns them
//   - Constructor functions (NewXxxService) accept a config struct
//   - Methods take context.Context and return explicit errors
//
// # Error Contract
//
// Every failure a service reports deliberately is a *model.ServiceError:
// missing records are NotFound, key collisions are Conflict, and the
// constructors in errors.go keep the messages uniform. Store sentinels
// (database.ErrNotFound, database.ErrDuplicate) never escape this layer.
// Anything else that comes back is an infrastructure failure and is passed
// through untyped for the HTTP boundary to treat as internal.
//
// # Relational Invariants
//
// A membership must always point at an existing person and an existing
// group. Writes check both ends first, and deletes cascade through
// memberships before removing the entity they point at.
package service
