package model

// Membership links exactly one person to exactly one group. At most one
// membership may exist per (personId, groupId) pair at any time.
type Membership struct {
	PersonID int64 `json:"personId"`
	GroupID  int64 `json:"groupId"`
}

// JoinGroupRequest is the body of POST /api/people/{id}/groups
type JoinGroupRequest struct {
	GroupID int64 `json:"groupId"`
}

// AddMemberRequest is the body of POST /api/groups/{id}/members
type AddMemberRequest struct {
	PersonID int64 `json:"personId"`
}
