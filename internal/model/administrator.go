package model

// Administrator represents an application administrator. The auth0id acts as
// the primary key and is issued externally, never by the store.
type Administrator struct {
	Auth0ID  string `json:"auth0id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Business constraints
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

// CreateAdministratorRequest represents a request to create an administrator
type CreateAdministratorRequest struct {
	Auth0ID  string `json:"auth0id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateAdministratorRequest represents a partial update to an administrator.
// The auth0id is immutable and comes from the route, never the body.
type UpdateAdministratorRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}
