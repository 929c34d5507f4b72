package model

import "time"

// Person represents a tracked contact
type Person struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        *string    `json:"email,omitempty"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	StudiesOrJob *string    `json:"studiesOrJob,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
}

// Business constraints
const (
	MinPersonNameLength = 3
	MaxPersonNameLength = 100
	MaxEmailLength      = 100
	MaxPhoneLength      = 30
	MaxBioLength        = 500
	MaxStudiesLength    = 100
)

// EarliestBirthdate is the exclusive lower bound for birthdates.
var EarliestBirthdate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// CreatePersonRequest represents a request to create a person
type CreatePersonRequest struct {
	Name         string     `json:"name"`
	Email        *string    `json:"email,omitempty"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	StudiesOrJob *string    `json:"studiesOrJob,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
}

// UpdatePersonRequest represents a partial update to a person
type UpdatePersonRequest struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	StudiesOrJob *string    `json:"studiesOrJob,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
}
