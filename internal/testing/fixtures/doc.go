// Package fixtures provides test data factories.
//
// Factories insert entities straight into a testdb backend with generated
// defaults, so a test can arrange people, groups, and memberships in a
// couple of lines and spend its assertions on the behavior under test:
//
//	stores := testdb.New()
//	f := fixtures.New(stores)
//	person := f.CreatePerson(t)
//	group := f.CreateGroup(t)
//	f.AddMember(t, person, group)
package fixtures
