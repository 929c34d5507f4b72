package service

import (
	"context"
	"errors"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// MembershipStore defines the interface for membership storage
type MembershipStore interface {
	Get(ctx context.Context, personID, groupID int64) (*model.Membership, error)
	GetByPersonID(ctx context.Context, personID int64) ([]model.Membership, error)
	GetByGroupID(ctx context.Context, groupID int64) ([]model.Membership, error)
	Create(ctx context.Context, membership *model.Membership) error
	Delete(ctx context.Context, personID, groupID int64) error
	DeleteByPersonID(ctx context.Context, personID int64) (int64, error)
	DeleteByGroupID(ctx context.Context, groupID int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// MembershipService handles membership business logic. It spans all three
// stores because every membership operation has to vouch for both ends of
// the link before touching the link itself.
type MembershipService struct {
	people      PersonStore
	groups      GroupStore
	memberships MembershipStore
}

// MembershipServiceConfig holds configuration for the membership service
type MembershipServiceConfig struct {
	PersonStore     PersonStore
	GroupStore      GroupStore
	MembershipStore MembershipStore
}

// NewMembershipService creates a new membership service
func NewMembershipService(cfg MembershipServiceConfig) *MembershipService {
	return &MembershipService{
		people:      cfg.PersonStore,
		groups:      cfg.GroupStore,
		memberships: cfg.MembershipStore,
	}
}

// Join makes a person a member of a group. The group is checked before the
// person, so a request that is wrong on both ends reports the group.
func (s *MembershipService) Join(ctx context.Context, personID, groupID int64) error {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return errGroupNotFound(groupID)
		}
		return err
	}
	if _, err := s.people.GetByID(ctx, personID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return errPersonNotFound(personID)
		}
		return err
	}

	err := s.memberships.Create(ctx, &model.Membership{PersonID: personID, GroupID: groupID})
	if errors.Is(err, database.ErrDuplicate) {
		return errAlreadyMember(personID, groupID)
	}
	return err
}

// Leave removes a person's membership of a group
func (s *MembershipService) Leave(ctx context.Context, personID, groupID int64) error {
	err := s.memberships.Delete(ctx, personID, groupID)
	if errors.Is(err, database.ErrNotFound) {
		return errNotMember(personID, groupID)
	}
	return err
}

// LeaveAll removes every membership a person holds, returning the count
// removed. The person must exist; holding no memberships is not an error.
func (s *MembershipService) LeaveAll(ctx context.Context, personID int64) (int64, error) {
	if _, err := s.people.GetByID(ctx, personID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, errPersonNotFound(personID)
		}
		return 0, err
	}
	return s.memberships.DeleteByPersonID(ctx, personID)
}

// RemoveAllMembers removes every membership of a group, returning the count
// removed. The group must exist; having no members is not an error.
func (s *MembershipService) RemoveAllMembers(ctx context.Context, groupID int64) (int64, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, errGroupNotFound(groupID)
		}
		return 0, err
	}
	return s.memberships.DeleteByGroupID(ctx, groupID)
}

// GetGroups retrieves the groups a person belongs to
func (s *MembershipService) GetGroups(ctx context.Context, personID int64) ([]model.Group, error) {
	if _, err := s.people.GetByID(ctx, personID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errPersonNotFound(personID)
		}
		return nil, err
	}

	memberships, err := s.memberships.GetByPersonID(ctx, personID)
	if err != nil {
		return nil, err
	}

	groups := make([]model.Group, 0, len(memberships))
	for _, membership := range memberships {
		group, err := s.groups.GetByID(ctx, membership.GroupID)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

// GetMembers retrieves the people belonging to a group
func (s *MembershipService) GetMembers(ctx context.Context, groupID int64) ([]model.Person, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errGroupNotFound(groupID)
		}
		return nil, err
	}

	memberships, err := s.memberships.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	people := make([]model.Person, 0, len(memberships))
	for _, membership := range memberships {
		person, err := s.people.GetByID(ctx, membership.PersonID)
		if err != nil {
			return nil, err
		}
		people = append(people, *person)
	}
	return people, nil
}

// Count returns the number of memberships
func (s *MembershipService) Count(ctx context.Context) (int64, error) {
	return s.memberships.Count(ctx)
}
