package service

import (
	"context"
	"errors"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// GroupStore defines the interface for group storage
type GroupStore interface {
	GetAll(ctx context.Context) ([]model.Group, error)
	GetByID(ctx context.Context, id int64) (*model.Group, error)
	Create(ctx context.Context, group *model.Group) error
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// GroupService handles group business logic
type GroupService struct {
	groups      GroupStore
	memberships MembershipStore
}

// GroupServiceConfig holds configuration for the group service
type GroupServiceConfig struct {
	GroupStore      GroupStore
	MembershipStore MembershipStore
}

// NewGroupService creates a new group service
func NewGroupService(cfg GroupServiceConfig) *GroupService {
	return &GroupService{
		groups:      cfg.GroupStore,
		memberships: cfg.MembershipStore,
	}
}

// GetAll retrieves all groups
func (s *GroupService) GetAll(ctx context.Context) ([]model.Group, error) {
	return s.groups.GetAll(ctx)
}

// GetByID retrieves a group by id
func (s *GroupService) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	group, err := s.groups.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errGroupNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

// Create stores a new group and returns it with its assigned id
func (s *GroupService) Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	group := &model.Group{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Target:      req.Target,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// CreateMany stores a batch of groups one at a time. The first failure stops
// the batch; groups created before it stay stored, and they are returned
// alongside the error.
func (s *GroupService) CreateMany(ctx context.Context, reqs []model.CreateGroupRequest) ([]model.Group, error) {
	created := make([]model.Group, 0, len(reqs))
	for _, req := range reqs {
		group, err := s.Create(ctx, req)
		if err != nil {
			return created, err
		}
		created = append(created, *group)
	}
	return created, nil
}

// Update applies a partial update and returns the updated group
func (s *GroupService) Update(ctx context.Context, id int64, req model.UpdateGroupRequest) (*model.Group, error) {
	group, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.Color != nil {
		group.Color = req.Color
	}
	if req.Target != nil {
		group.Target = req.Target
	}

	if err := s.groups.Update(ctx, group); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errGroupNotFound(id)
		}
		return nil, err
	}
	return group, nil
}

// Delete removes a group and every membership of it. The memberships go
// first so no membership ever points at a missing group.
func (s *GroupService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.memberships.DeleteByGroupID(ctx, id); err != nil {
		return err
	}
	err := s.groups.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return errGroupNotFound(id)
	}
	return err
}

// DeleteMany removes the given groups and their memberships, returning how
// many groups existed. Missing ids are skipped.
func (s *GroupService) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	var removed int64
	for _, id := range ids {
		err := s.Delete(ctx, id)
		if err != nil {
			if model.IsKind(err, model.ErrorNotFound) {
				continue
			}
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// DeleteAll removes every group, clearing all memberships first. Returns
// the number of groups removed; an empty store is not an error.
func (s *GroupService) DeleteAll(ctx context.Context) (int64, error) {
	if _, err := s.memberships.DeleteAll(ctx); err != nil {
		return 0, err
	}
	return s.groups.DeleteAll(ctx)
}

// Count returns the number of groups
func (s *GroupService) Count(ctx context.Context) (int64, error) {
	return s.groups.Count(ctx)
}
