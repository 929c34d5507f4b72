package service

import (
	"context"
	"fmt"
	"log/slog"
	mrand "math/rand/v2"
	"time"

	"github.com/forgo/roster/api/internal/model"
)

// SeederService fills the store with mock data for development and demos
type SeederService struct {
	people         *PersonService
	groups         *GroupService
	administrators *AdministratorService
	memberships    *MembershipService
	logger         *slog.Logger
}

// SeederServiceConfig holds configuration for the seeder service
type SeederServiceConfig struct {
	PersonService        *PersonService
	GroupService         *GroupService
	AdministratorService *AdministratorService
	MembershipService    *MembershipService
	Logger               *slog.Logger
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederServiceConfig) *SeederService {
	return &SeederService{
		people:         cfg.PersonService,
		groups:         cfg.GroupService,
		administrators: cfg.AdministratorService,
		memberships:    cfg.MembershipService,
		logger:         cfg.Logger,
	}
}

const seedCount = 10

var (
	seedFirstNames = []string{
		"Ada", "Grace", "Edsger", "Barbara", "Donald",
		"Margaret", "Alan", "Radia", "Dennis", "Frances",
	}
	seedLastNames = []string{
		"Lovelace", "Hopper", "Dijkstra", "Liskov", "Knuth",
		"Hamilton", "Turing", "Perlman", "Ritchie", "Allen",
	}
	seedJobs = []string{
		"Mathematician", "Rear Admiral", "Professor", "Software Engineer",
		"Author", "Systems Programmer", "Cryptanalyst", "Network Engineer",
	}
	seedGroupNames = []string{
		"Chess Club", "Choir", "Debate Society", "Running Crew", "Book Circle",
		"Garden Collective", "Film Night", "Board Game Guild", "Cooking Class", "Hiking Group",
	}
	seedColors = []string{"red", "green", "blue", "yellow", "purple", "orange"}
)

// ClearDB removes everything, memberships first so no membership ever
// points at a missing person or group.
func (s *SeederService) ClearDB(ctx context.Context) error {
	if _, err := s.memberships.memberships.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear memberships: %w", err)
	}
	if _, err := s.groups.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear groups: %w", err)
	}
	if _, err := s.people.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear people: %w", err)
	}
	if _, err := s.administrators.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear administrators: %w", err)
	}
	return nil
}

// Run clears the store and seeds administrators, people, groups, and a set
// of random memberships between them.
func (s *SeederService) Run(ctx context.Context) error {
	if err := s.ClearDB(ctx); err != nil {
		return err
	}

	if err := s.seedAdministrators(ctx); err != nil {
		return err
	}
	people, err := s.seedPeople(ctx)
	if err != nil {
		return err
	}
	groups, err := s.seedGroups(ctx)
	if err != nil {
		return err
	}
	if err := s.seedMemberships(ctx, people, groups); err != nil {
		return err
	}

	s.logger.Info("seeding complete",
		"people", len(people),
		"groups", len(groups))
	return nil
}

func (s *SeederService) seedAdministrators(ctx context.Context) error {
	admins := []model.CreateAdministratorRequest{
		{Auth0ID: "auth0|seed-root", Username: "root", Email: "root@roster.dev"},
		{Auth0ID: "auth0|seed-ops", Username: "ops", Email: "ops@roster.dev"},
	}
	for _, req := range admins {
		if _, err := s.administrators.Create(ctx, req); err != nil {
			return fmt.Errorf("seed administrator %s: %w", req.Username, err)
		}
	}
	return nil
}

func (s *SeederService) seedPeople(ctx context.Context) ([]model.Person, error) {
	reqs := make([]model.CreatePersonRequest, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		first := seedFirstNames[mrand.IntN(len(seedFirstNames))]
		last := seedLastNames[mrand.IntN(len(seedLastNames))]
		name := first + " " + last
		email := fmt.Sprintf("%s.%s%d@example.com", first, last, i)
		phone := fmt.Sprintf("+1-555-%04d", mrand.IntN(10000))
		bio := fmt.Sprintf("%s likes long walks and short compile times.", first)
		job := seedJobs[mrand.IntN(len(seedJobs))]
		birthdate := randomBirthdate()

		reqs = append(reqs, model.CreatePersonRequest{
			Name:         name,
			Email:        &email,
			PhoneNumber:  &phone,
			Bio:          &bio,
			StudiesOrJob: &job,
			Birthdate:    &birthdate,
		})
	}
	return s.people.CreateMany(ctx, reqs)
}

func (s *SeederService) seedGroups(ctx context.Context) ([]model.Group, error) {
	reqs := make([]model.CreateGroupRequest, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		name := seedGroupNames[i%len(seedGroupNames)]
		description := fmt.Sprintf("The %s meets weekly and welcomes newcomers.", name)
		color := seedColors[mrand.IntN(len(seedColors))]
		target := "everyone"

		reqs = append(reqs, model.CreateGroupRequest{
			Name:        name,
			Description: description,
			Color:       &color,
			Target:      &target,
		})
	}
	return s.groups.CreateMany(ctx, reqs)
}

// seedMemberships links random people to random groups. Re-drawing an
// existing pair is expected with random picks, so conflicts are skipped
// rather than failing the seed.
func (s *SeederService) seedMemberships(ctx context.Context, people []model.Person, groups []model.Group) error {
	for i := 0; i < seedCount; i++ {
		personID := people[mrand.IntN(len(people))].ID
		groupID := groups[mrand.IntN(len(groups))].ID

		err := s.memberships.Join(ctx, personID, groupID)
		if model.IsKind(err, model.ErrorConflict) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed membership: %w", err)
		}
	}
	return nil
}

func randomBirthdate() time.Time {
	base := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(mrand.IntN(55), mrand.IntN(12), mrand.IntN(28))
}
