package testdb

import (
	"github.com/forgo/roster/api/internal/repository/memory"
)

// Stores bundles one in-memory backend: the four per-entity stores share
// nothing, so a fresh bundle gives each test an isolated database.
type Stores struct {
	People         *memory.PersonStore
	Groups         *memory.GroupStore
	Administrators *memory.AdministratorStore
	Memberships    *memory.MembershipStore
}

// New creates a fresh in-memory backend.
func New() *Stores {
	return &Stores{
		People:         memory.NewPersonStore(),
		Groups:         memory.NewGroupStore(),
		Administrators: memory.NewAdministratorStore(),
		Memberships:    memory.NewMembershipStore(),
	}
}
