// Package database provides the store abstraction for the Roster API.
//
// The Database interface abstracts SurrealDB operations so repositories stay
// separated from connection mechanics. It offers three query methods:
//   - Query: returns multiple results (SELECT lists)
//   - QueryOne: returns a single result (SELECT by id)
//   - Execute: no return value (mutations)
//
// # Error Handling
//
// Standard errors are defined for the failure modes the service layer cares
// about:
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique constraint violation
//   - ErrConnection: connection issues
//   - ErrQuery: query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // handle missing record
//	}
//
// These sentinels are the contract shared by every backend: the SurrealDB
// implementation here, the PostgreSQL stores in internal/repository/postgres,
// and the in-memory stores in internal/repository/memory all surface them.
//
// There is no cross-entity transaction support. Per-operation atomicity is
// assumed; multi-step invariants (membership cascade on person/group delete)
// are enforced by ordering in the service layer.
package database
