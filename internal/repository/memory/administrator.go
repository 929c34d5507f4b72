package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// AdministratorStore is an in-memory administrator store keyed by auth0id,
// with usernames held unique the way the real backends do via indexes.
type AdministratorStore struct {
	mu             sync.RWMutex
	administrators map[string]model.Administrator
}

// NewAdministratorStore creates an empty in-memory administrator store
func NewAdministratorStore() *AdministratorStore {
	return &AdministratorStore{administrators: make(map[string]model.Administrator)}
}

func (s *AdministratorStore) GetAll(_ context.Context) ([]model.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	administrators := make([]model.Administrator, 0, len(s.administrators))
	for _, a := range s.administrators {
		administrators = append(administrators, a)
	}
	sort.Slice(administrators, func(i, j int) bool {
		return administrators[i].Username < administrators[j].Username
	})
	return administrators, nil
}

func (s *AdministratorStore) GetByAuth0ID(_ context.Context, auth0ID string) (*model.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.administrators[auth0ID]; ok {
		return &a, nil
	}
	return nil, database.ErrNotFound
}

func (s *AdministratorStore) GetByUsername(_ context.Context, username string) (*model.Administrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.administrators {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *AdministratorStore) Create(_ context.Context, a *model.Administrator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.administrators[a.Auth0ID]; ok {
		return database.ErrDuplicate
	}
	for _, existing := range s.administrators {
		if existing.Username == a.Username {
			return database.ErrDuplicate
		}
	}
	s.administrators[a.Auth0ID] = *a
	return nil
}

func (s *AdministratorStore) Update(_ context.Context, a *model.Administrator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.administrators[a.Auth0ID]; !ok {
		return database.ErrNotFound
	}
	for auth0ID, existing := range s.administrators {
		if auth0ID != a.Auth0ID && existing.Username == a.Username {
			return database.ErrDuplicate
		}
	}
	s.administrators[a.Auth0ID] = *a
	return nil
}

func (s *AdministratorStore) Delete(_ context.Context, auth0ID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.administrators[auth0ID]; !ok {
		return database.ErrNotFound
	}
	delete(s.administrators, auth0ID)
	return nil
}

func (s *AdministratorStore) DeleteMany(_ context.Context, auth0IDs []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for _, auth0ID := range auth0IDs {
		if _, ok := s.administrators[auth0ID]; ok {
			delete(s.administrators, auth0ID)
			removed++
		}
	}
	return removed, nil
}

func (s *AdministratorStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := int64(len(s.administrators))
	s.administrators = make(map[string]model.Administrator)
	return removed, nil
}

func (s *AdministratorStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.administrators)), nil
}
