// Package memory provides in-memory implementations of the service layer's
// store interfaces. They back the "memory" database driver and the service
// tests, so no running database is needed for local development or CI.
//
// The stores mirror the semantics of the SurrealDB and Postgres backends:
// missing records surface as database.ErrNotFound, key collisions as
// database.ErrDuplicate, and person/group ids are assigned from a
// monotonically increasing counter starting at 1.
package memory
