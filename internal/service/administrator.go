package service

import (
	"context"
	"errors"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// AdministratorStore defines the interface for administrator storage
type AdministratorStore interface {
	GetAll(ctx context.Context) ([]model.Administrator, error)
	GetByAuth0ID(ctx context.Context, auth0ID string) (*model.Administrator, error)
	GetByUsername(ctx context.Context, username string) (*model.Administrator, error)
	Create(ctx context.Context, administrator *model.Administrator) error
	Update(ctx context.Context, administrator *model.Administrator) error
	Delete(ctx context.Context, auth0ID string) error
	DeleteMany(ctx context.Context, auth0IDs []string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// AdministratorService handles administrator business logic
type AdministratorService struct {
	administrators AdministratorStore
}

// AdministratorServiceConfig holds configuration for the administrator service
type AdministratorServiceConfig struct {
	AdministratorStore AdministratorStore
}

// NewAdministratorService creates a new administrator service
func NewAdministratorService(cfg AdministratorServiceConfig) *AdministratorService {
	return &AdministratorService{administrators: cfg.AdministratorStore}
}

// GetAll retrieves all administrators
func (s *AdministratorService) GetAll(ctx context.Context) ([]model.Administrator, error) {
	return s.administrators.GetAll(ctx)
}

// GetByAuth0ID retrieves an administrator by auth0id
func (s *AdministratorService) GetByAuth0ID(ctx context.Context, auth0ID string) (*model.Administrator, error) {
	administrator, err := s.administrators.GetByAuth0ID(ctx, auth0ID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errAdministratorNotFound(auth0ID)
	}
	if err != nil {
		return nil, err
	}
	return administrator, nil
}

// GetByUsername retrieves an administrator by username
func (s *AdministratorService) GetByUsername(ctx context.Context, username string) (*model.Administrator, error) {
	administrator, err := s.administrators.GetByUsername(ctx, username)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errAdministratorNotFoundByUsername(username)
	}
	if err != nil {
		return nil, err
	}
	return administrator, nil
}

// Create stores a new administrator. Both the auth0id and the username must
// be free; a collision on either reports a conflict naming both.
func (s *AdministratorService) Create(ctx context.Context, req model.CreateAdministratorRequest) (*model.Administrator, error) {
	administrator := &model.Administrator{
		Auth0ID:  req.Auth0ID,
		Username: req.Username,
		Email:    req.Email,
	}
	if err := s.administrators.Create(ctx, administrator); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, errAdministratorExists(req.Auth0ID, req.Username)
		}
		return nil, err
	}
	return administrator, nil
}

// CreateMany stores a batch of administrators one at a time. The first
// failure stops the batch; administrators created before it stay stored,
// and they are returned alongside the error.
func (s *AdministratorService) CreateMany(ctx context.Context, reqs []model.CreateAdministratorRequest) ([]model.Administrator, error) {
	created := make([]model.Administrator, 0, len(reqs))
	for _, req := range reqs {
		administrator, err := s.Create(ctx, req)
		if err != nil {
			return created, err
		}
		created = append(created, *administrator)
	}
	return created, nil
}

// Update applies a partial update and returns the updated administrator.
// The auth0id is immutable; changing the username to one held by another
// administrator reports a conflict naming the username.
func (s *AdministratorService) Update(ctx context.Context, auth0ID string, req model.UpdateAdministratorRequest) (*model.Administrator, error) {
	administrator, err := s.GetByAuth0ID(ctx, auth0ID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		administrator.Username = *req.Username
	}
	if req.Email != nil {
		administrator.Email = *req.Email
	}

	if err := s.administrators.Update(ctx, administrator); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, errUsernameInUse(administrator.Username)
		}
		if errors.Is(err, database.ErrNotFound) {
			return nil, errAdministratorNotFound(auth0ID)
		}
		return nil, err
	}
	return administrator, nil
}

// Delete removes an administrator by auth0id
func (s *AdministratorService) Delete(ctx context.Context, auth0ID string) error {
	err := s.administrators.Delete(ctx, auth0ID)
	if errors.Is(err, database.ErrNotFound) {
		return errAdministratorNotFound(auth0ID)
	}
	return err
}

// DeleteMany removes the given administrators, returning how many existed.
// Missing auth0ids are skipped.
func (s *AdministratorService) DeleteMany(ctx context.Context, auth0IDs []string) (int64, error) {
	var removed int64
	for _, auth0ID := range auth0IDs {
		err := s.Delete(ctx, auth0ID)
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

// DeleteAll removes every administrator, returning the count removed
func (s *AdministratorService) DeleteAll(ctx context.Context) (int64, error) {
	return s.administrators.DeleteAll(ctx)
}

// Count returns the number of administrators
func (s *AdministratorService) Count(ctx context.Context) (int64, error) {
	return s.administrators.Count(ctx)
}
