// Package repository implements the SurrealDB data access layer for the
// Roster API.
//
// Each repository struct handles CRUD operations for a single domain
// entity. All of them follow the same pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Methods implement the store interface the service layer depends on
//   - SurrealQL queries use $variable parameters for all inputs
//   - Results are parsed and mapped to model structs
//
// # Record Identity
//
// People and groups carry store-assigned numeric ids. SurrealDB has no
// serial columns, so Create bumps a per-table counter record
// (sequence:person, sequence:group) and uses the new value as the record
// id via type::thing. Administrators are keyed by their auth0id, and
// memberships by the [person_id, group_id] pair so the record id itself
// enforces pair uniqueness.
//
// # Error Mapping
//
// Missing records surface as database.ErrNotFound and key collisions as
// database.ErrDuplicate, the sentinels every backend shares. The service
// layer translates those into API errors.
package repository
