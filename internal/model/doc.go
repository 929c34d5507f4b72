// Package model defines domain entities and data structures for the Roster API.
//
// The model package contains all struct definitions for domain objects,
// request types, and the ServiceError taxonomy. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Person: A tracked contact with optional profile fields
//   - Group: A named group people can belong to
//   - Administrator: An application administrator keyed by auth0id
//   - Membership: The link between one person and one group, unique per pair
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Group struct {
//	    ID          int64  `json:"id"`
//	    Name        string `json:"name"`
//	    Description string `json:"description"`
//	}
//
// # Validation Constants
//
// The package defines validation constants consumed by internal/validation:
//
//	const (
//	    MinPersonNameLength = 3
//	    MaxPersonNameLength = 100
//	    MaxBioLength        = 500
//	)
//
// # Error Types
//
// ServiceError is the single vocabulary for domain failures. Each carries a
// kind from a closed set, a message, and optional details. The HTTP boundary
// maps kinds to status codes in exactly one place (internal/handler).
package model
