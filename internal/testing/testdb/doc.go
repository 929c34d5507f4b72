// Package testdb provides an in-memory storage backend for tests.
//
// Service and handler tests run against the same store implementations the
// memory driver uses in production, so store semantics (sequential ids,
// ordering, sentinel errors) are identical to what those tests would see
// against a real backend.
package testdb
