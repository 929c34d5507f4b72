package service

import (
	"context"
	"errors"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// PersonStore defines the interface for person storage
type PersonStore interface {
	GetAll(ctx context.Context) ([]model.Person, error)
	GetByID(ctx context.Context, id int64) (*model.Person, error)
	Create(ctx context.Context, person *model.Person) error
	Update(ctx context.Context, person *model.Person) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// PersonService handles person business logic
type PersonService struct {
	people      PersonStore
	memberships MembershipStore
}

// PersonServiceConfig holds configuration for the person service
type PersonServiceConfig struct {
	PersonStore     PersonStore
	MembershipStore MembershipStore
}

// NewPersonService creates a new person service
func NewPersonService(cfg PersonServiceConfig) *PersonService {
	return &PersonService{
		people:      cfg.PersonStore,
		memberships: cfg.MembershipStore,
	}
}

// GetAll retrieves all people
func (s *PersonService) GetAll(ctx context.Context) ([]model.Person, error) {
	return s.people.GetAll(ctx)
}

// GetByID retrieves a person by id
func (s *PersonService) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	person, err := s.people.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errPersonNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}

// Create stores a new person and returns it with its assigned id
func (s *PersonService) Create(ctx context.Context, req model.CreatePersonRequest) (*model.Person, error) {
	person := &model.Person{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Bio:          req.Bio,
		StudiesOrJob: req.StudiesOrJob,
		Birthdate:    req.Birthdate,
	}
	if err := s.people.Create(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// CreateMany stores a batch of people one at a time. The first failure stops
// the batch; people created before it stay stored, and they are returned
// alongside the error.
func (s *PersonService) CreateMany(ctx context.Context, reqs []model.CreatePersonRequest) ([]model.Person, error) {
	created := make([]model.Person, 0, len(reqs))
	for _, req := range reqs {
		person, err := s.Create(ctx, req)
		if err != nil {
			return created, err
		}
		created = append(created, *person)
	}
	return created, nil
}

// Update applies a partial update and returns the updated person
func (s *PersonService) Update(ctx context.Context, id int64, req model.UpdatePersonRequest) (*model.Person, error) {
	person, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.Email != nil {
		person.Email = req.Email
	}
	if req.PhoneNumber != nil {
		person.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != nil {
		person.Bio = req.Bio
	}
	if req.StudiesOrJob != nil {
		person.StudiesOrJob = req.StudiesOrJob
	}
	if req.Birthdate != nil {
		person.Birthdate = req.Birthdate
	}

	if err := s.people.Update(ctx, person); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errPersonNotFound(id)
		}
		return nil, err
	}
	return person, nil
}

// Delete removes a person and every membership they hold. The memberships
// go first so no membership ever points at a missing person.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.memberships.DeleteByPersonID(ctx, id); err != nil {
		return err
	}
	err := s.people.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return errPersonNotFound(id)
	}
	return err
}

// DeleteMany removes the given people and their memberships, returning how
// many people existed. Missing ids are skipped.
func (s *PersonService) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
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

// DeleteAll removes every person, clearing all memberships first. Returns
// the number of people removed; an empty store is not an error.
func (s *PersonService) DeleteAll(ctx context.Context) (int64, error) {
	if _, err := s.memberships.DeleteAll(ctx); err != nil {
		return 0, err
	}
	return s.people.DeleteAll(ctx)
}

// Count returns the number of people
func (s *PersonService) Count(ctx context.Context) (int64, error) {
	return s.people.Count(ctx)
}
