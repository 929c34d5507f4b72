// Package validation is the schema-driven gatekeeper that runs before any
// business logic.
//
// A Schema is a per-route contract with up to three sub-schemas: Params,
// Query, and Body. Omitted sub-schemas are permissive. Validation collects
// every violation across all fields of a sub-schema, aborting early only
// within a single field's rule chain, and reports them keyed by field path.
//
// Successful validation normalizes the input: strings are trimmed, numeric
// identifiers are coerced to int64, dates are parsed to time.Time. Downstream
// code must consume the normalized values and never re-validate.
//
// The per-entity registries (Person, Group, Administrator) declare one Schema
// per route operation; the HTTP adapter in internal/middleware runs them.
package validation
