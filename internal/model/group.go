package model

// Group represents a group people can belong to
type Group struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color,omitempty"`
	Target      *string `json:"target,omitempty"`
}

// Business constraints
const (
	MinGroupNameLength   = 3
	MaxGroupNameLength   = 100
	MaxDescriptionLength = 500
	MaxColorLength       = 30
	MaxTargetLength      = 100
)

// CreateGroupRequest represents a request to create a group
type CreateGroupRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       *string `json:"color,omitempty"`
	Target      *string `json:"target,omitempty"`
}

// UpdateGroupRequest represents a partial update to a group
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Target      *string `json:"target,omitempty"`
}
