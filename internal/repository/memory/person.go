package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// PersonStore is an in-memory person store. It backs the memory database
// driver and the service tests, favoring clarity over performance.
type PersonStore struct {
	mu     sync.RWMutex
	nextID int64
	people map[int64]model.Person
}

// NewPersonStore creates an empty in-memory person store
func NewPersonStore() *PersonStore {
	return &PersonStore{nextID: 1, people: make(map[int64]model.Person)}
}

func (s *PersonStore) GetAll(_ context.Context) ([]model.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	people := make([]model.Person, 0, len(s.people))
	for _, p := range s.people {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	return people, nil
}

func (s *PersonStore) GetByID(_ context.Context, id int64) (*model.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.people[id]; ok {
		return &p, nil
	}
	return nil, database.ErrNotFound
}

func (s *PersonStore) Create(_ context.Context, p *model.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.people[p.ID] = *p
	return nil
}

func (s *PersonStore) Update(_ context.Context, p *model.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[p.ID]; !ok {
		return database.ErrNotFound
	}
	s.people[p.ID] = *p
	return nil
}

func (s *PersonStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.people, id)
	return nil
}

func (s *PersonStore) DeleteMany(_ context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for _, id := range ids {
		if _, ok := s.people[id]; ok {
			delete(s.people, id)
			removed++
		}
	}
	return removed, nil
}

func (s *PersonStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := int64(len(s.people))
	s.people = make(map[int64]model.Person)
	return removed, nil
}

func (s *PersonStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.people)), nil
}
