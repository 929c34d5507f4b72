package repository

import (
	"context"
	"errors"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// MembershipRepository handles membership data access. A membership record's
// id is the [person_id, group_id] pair, so the store itself refuses a second
// write for the same pair.
type MembershipRepository struct {
	db database.Database
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db database.Database) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Get retrieves a single membership by its (person, group) pair
func (r *MembershipRepository) Get(ctx context.Context, personID, groupID int64) (*model.Membership, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM type::thing('membership', [$person_id, $group_id])`,
		map[string]interface{}{"person_id": personID, "group_id": groupID})
	if err != nil {
		return nil, err
	}
	return parseMembership(result)
}

// GetByPersonID retrieves all memberships held by a person
func (r *MembershipRepository) GetByPersonID(ctx context.Context, personID int64) ([]model.Membership, error) {
	return r.list(ctx, `SELECT * FROM membership WHERE person_id = $person_id ORDER BY group_id`,
		map[string]interface{}{"person_id": personID})
}

// GetByGroupID retrieves all memberships of a group
func (r *MembershipRepository) GetByGroupID(ctx context.Context, groupID int64) ([]model.Membership, error) {
	return r.list(ctx, `SELECT * FROM membership WHERE group_id = $group_id ORDER BY person_id`,
		map[string]interface{}{"group_id": groupID})
}

// Create persists a new membership. A second write for the same pair
// surfaces as database.ErrDuplicate.
func (r *MembershipRepository) Create(ctx context.Context, m *model.Membership) error {
	query := `
		CREATE ONLY type::thing('membership', [$person_id, $group_id]) CONTENT {
			person_id: $person_id,
			group_id: $group_id
		} RETURN AFTER
	`
	vars := map[string]interface{}{
		"person_id": m.PersonID,
		"group_id":  m.GroupID,
	}

	_, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isDuplicateError(err) {
			return database.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes a membership by its (person, group) pair
func (r *MembershipRepository) Delete(ctx context.Context, personID, groupID int64) error {
	vars := map[string]interface{}{"person_id": personID, "group_id": groupID}
	if _, err := r.db.QueryOne(ctx,
		`SELECT id FROM type::thing('membership', [$person_id, $group_id])`, vars); err != nil {
		return err
	}
	return r.db.Execute(ctx, `DELETE type::thing('membership', [$person_id, $group_id])`, vars)
}

// DeleteByPersonID removes every membership held by a person, returning
// the count removed. Removing zero rows is not an error.
func (r *MembershipRepository) DeleteByPersonID(ctx context.Context, personID int64) (int64, error) {
	result, err := r.db.Query(ctx,
		`DELETE membership WHERE person_id = $person_id RETURN BEFORE`,
		map[string]interface{}{"person_id": personID})
	if err != nil {
		return 0, err
	}
	rows, _ := extractQueryResults(result)
	return int64(len(rows)), nil
}

// DeleteByGroupID removes every membership of a group, returning the count
// removed. Removing zero rows is not an error.
func (r *MembershipRepository) DeleteByGroupID(ctx context.Context, groupID int64) (int64, error) {
	result, err := r.db.Query(ctx,
		`DELETE membership WHERE group_id = $group_id RETURN BEFORE`,
		map[string]interface{}{"group_id": groupID})
	if err != nil {
		return 0, err
	}
	rows, _ := extractQueryResults(result)
	return int64(len(rows)), nil
}

// DeleteAll removes every membership, returning the count removed
func (r *MembershipRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Query(ctx, `DELETE membership RETURN BEFORE`, nil)
	if err != nil {
		return 0, err
	}
	rows, _ := extractQueryResults(result)
	return int64(len(rows)), nil
}

// Count returns the number of memberships
func (r *MembershipRepository) Count(ctx context.Context) (int64, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM membership GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func (r *MembershipRepository) list(ctx context.Context, query string, vars map[string]interface{}) ([]model.Membership, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	rows, _ := extractQueryResults(result)
	memberships := make([]model.Membership, 0, len(rows))
	for _, row := range rows {
		membership, err := parseMembership(row)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, *membership)
	}
	return memberships, nil
}

func parseMembership(result interface{}) (*model.Membership, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrNotFound
	}
	return &model.Membership{
		PersonID: getInt64(data, "person_id"),
		GroupID:  getInt64(data, "group_id"),
	}, nil
}
