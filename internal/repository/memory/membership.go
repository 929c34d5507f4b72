package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

type membershipKey struct {
	personID int64
	groupID  int64
}

// MembershipStore is an in-memory membership store keyed by the
// (person, group) pair, so pair uniqueness holds by construction.
type MembershipStore struct {
	mu          sync.RWMutex
	memberships map[membershipKey]model.Membership
}

// NewMembershipStore creates an empty in-memory membership store
func NewMembershipStore() *MembershipStore {
	return &MembershipStore{memberships: make(map[membershipKey]model.Membership)}
}

func (s *MembershipStore) Get(_ context.Context, personID, groupID int64) (*model.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.memberships[membershipKey{personID, groupID}]; ok {
		return &m, nil
	}
	return nil, database.ErrNotFound
}

func (s *MembershipStore) GetByPersonID(_ context.Context, personID int64) ([]model.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	memberships := make([]model.Membership, 0)
	for _, m := range s.memberships {
		if m.PersonID == personID {
			memberships = append(memberships, m)
		}
	}
	sort.Slice(memberships, func(i, j int) bool {
		return memberships[i].GroupID < memberships[j].GroupID
	})
	return memberships, nil
}

func (s *MembershipStore) GetByGroupID(_ context.Context, groupID int64) ([]model.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	memberships := make([]model.Membership, 0)
	for _, m := range s.memberships {
		if m.GroupID == groupID {
			memberships = append(memberships, m)
		}
	}
	sort.Slice(memberships, func(i, j int) bool {
		return memberships[i].PersonID < memberships[j].PersonID
	})
	return memberships, nil
}

func (s *MembershipStore) Create(_ context.Context, m *model.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := membershipKey{m.PersonID, m.GroupID}
	if _, ok := s.memberships[key]; ok {
		return database.ErrDuplicate
	}
	s.memberships[key] = *m
	return nil
}

func (s *MembershipStore) Delete(_ context.Context, personID, groupID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := membershipKey{personID, groupID}
	if _, ok := s.memberships[key]; !ok {
		return database.ErrNotFound
	}
	delete(s.memberships, key)
	return nil
}

func (s *MembershipStore) DeleteByPersonID(_ context.Context, personID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for key := range s.memberships {
		if key.personID == personID {
			delete(s.memberships, key)
			removed++
		}
	}
	return removed, nil
}

func (s *MembershipStore) DeleteByGroupID(_ context.Context, groupID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for key := range s.memberships {
		if key.groupID == groupID {
			delete(s.memberships, key)
			removed++
		}
	}
	return removed, nil
}

func (s *MembershipStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := int64(len(s.memberships))
	s.memberships = make(map[membershipKey]model.Membership)
	return removed, nil
}

func (s *MembershipStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.memberships)), nil
}
