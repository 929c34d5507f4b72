package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// GroupStore is an in-memory group store
type GroupStore struct {
	mu     sync.RWMutex
	nextID int64
	groups map[int64]model.Group
}

// NewGroupStore creates an empty in-memory group store
func NewGroupStore() *GroupStore {
	return &GroupStore{nextID: 1, groups: make(map[int64]model.Group)}
}

func (s *GroupStore) GetAll(_ context.Context) ([]model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	groups := make([]model.Group, 0, len(s.groups))
	for _, g := range s.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (s *GroupStore) GetByID(_ context.Context, id int64) (*model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.groups[id]; ok {
		return &g, nil
	}
	return nil, database.ErrNotFound
}

func (s *GroupStore) Create(_ context.Context, g *model.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.nextID
	s.nextID++
	s.groups[g.ID] = *g
	return nil
}

func (s *GroupStore) Update(_ context.Context, g *model.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[g.ID]; !ok {
		return database.ErrNotFound
	}
	s.groups[g.ID] = *g
	return nil
}

func (s *GroupStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.groups, id)
	return nil
}

func (s *GroupStore) DeleteMany(_ context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for _, id := range ids {
		if _, ok := s.groups[id]; ok {
			delete(s.groups, id)
			removed++
		}
	}
	return removed, nil
}

func (s *GroupStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := int64(len(s.groups))
	s.groups = make(map[int64]model.Group)
	return removed, nil
}

func (s *GroupStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.groups)), nil
}
