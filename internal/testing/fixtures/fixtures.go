package fixtures

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/testing/testdb"
)

// Factory seeds entities directly into a test backend, bypassing the
// service layer so tests can arrange state without exercising the paths
// they are not about.
type Factory struct {
	stores *testdb.Stores
	seq    int
}

// New creates a new fixture factory over the given backend.
func New(stores *testdb.Stores) *Factory {
	return &Factory{stores: stores}
}

func (f *Factory) next() int {
	f.seq++
	return f.seq
}

// PersonOpts customizes person creation. Zero values fall back to
// generated defaults.
type PersonOpts struct {
	Name      string
	Email     string
	Birthdate *time.Time
}

// CreatePerson inserts a person and returns it with its assigned id.
func (f *Factory) CreatePerson(t *testing.T, opts ...PersonOpts) model.Person {
	t.Helper()

	var o PersonOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	n := f.next()
	if o.Name == "" {
		o.Name = fmt.Sprintf("Person %d", n)
	}
	if o.Email == "" {
		o.Email = fmt.Sprintf("person%d@example.com", n)
	}

	person := model.Person{
		Name:      o.Name,
		Email:     &o.Email,
		Birthdate: o.Birthdate,
	}
	if err := f.stores.People.Create(context.Background(), &person); err != nil {
		t.Fatalf("fixtures: create person: %v", err)
	}
	return person
}

// GroupOpts customizes group creation.
type GroupOpts struct {
	Name        string
	Description string
	Color       string
}

// CreateGroup inserts a group and returns it with its assigned id.
func (f *Factory) CreateGroup(t *testing.T, opts ...GroupOpts) model.Group {
	t.Helper()

	var o GroupOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	n := f.next()
	if o.Name == "" {
		o.Name = fmt.Sprintf("Group %d", n)
	}
	if o.Description == "" {
		o.Description = fmt.Sprintf("Test group %d", n)
	}

	group := model.Group{
		Name:        o.Name,
		Description: o.Description,
	}
	if o.Color != "" {
		group.Color = &o.Color
	}
	if err := f.stores.Groups.Create(context.Background(), &group); err != nil {
		t.Fatalf("fixtures: create group: %v", err)
	}
	return group
}

// AdministratorOpts customizes administrator creation.
type AdministratorOpts struct {
	Auth0ID  string
	Username string
	Email    string
}

// CreateAdministrator inserts an administrator.
func (f *Factory) CreateAdministrator(t *testing.T, opts ...AdministratorOpts) model.Administrator {
	t.Helper()

	var o AdministratorOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	n := f.next()
	if o.Auth0ID == "" {
		o.Auth0ID = fmt.Sprintf("auth0|fixture-%d", n)
	}
	if o.Username == "" {
		o.Username = fmt.Sprintf("admin%d", n)
	}
	if o.Email == "" {
		o.Email = fmt.Sprintf("admin%d@example.com", n)
	}

	admin := model.Administrator{
		Auth0ID:  o.Auth0ID,
		Username: o.Username,
		Email:    o.Email,
	}
	if err := f.stores.Administrators.Create(context.Background(), &admin); err != nil {
		t.Fatalf("fixtures: create administrator: %v", err)
	}
	return admin
}

// AddMember links a person to a group.
func (f *Factory) AddMember(t *testing.T, person model.Person, group model.Group) model.Membership {
	t.Helper()

	membership := model.Membership{PersonID: person.ID, GroupID: group.ID}
	if err := f.stores.Memberships.Create(context.Background(), &membership); err != nil {
		t.Fatalf("fixtures: add member: %v", err)
	}
	return membership
}
