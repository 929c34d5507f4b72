package postgres

import (
	"context"
	"database/sql"

	"github.com/forgo/roster/api/internal/model"
)

// MembershipStore persists memberships in PostgreSQL. The (person_id,
// group_id) primary key enforces pair uniqueness at the store level.
type MembershipStore struct {
	db *sql.DB
}

// NewMembershipStore creates a PostgreSQL-backed membership store
func NewMembershipStore(db *sql.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

func (s *MembershipStore) Get(ctx context.Context, personID, groupID int64) (*model.Membership, error) {
	var m model.Membership
	err := s.db.QueryRowContext(ctx,
		`SELECT person_id, group_id FROM memberships WHERE person_id = $1 AND group_id = $2`,
		personID, groupID).Scan(&m.PersonID, &m.GroupID)
	if err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (s *MembershipStore) GetByPersonID(ctx context.Context, personID int64) ([]model.Membership, error) {
	return s.list(ctx,
		`SELECT person_id, group_id FROM memberships WHERE person_id = $1 ORDER BY group_id`,
		personID)
}

func (s *MembershipStore) GetByGroupID(ctx context.Context, groupID int64) ([]model.Membership, error) {
	return s.list(ctx,
		`SELECT person_id, group_id FROM memberships WHERE group_id = $1 ORDER BY person_id`,
		groupID)
}

func (s *MembershipStore) Create(ctx context.Context, m *model.Membership) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memberships (person_id, group_id) VALUES ($1, $2)`,
		m.PersonID, m.GroupID)
	return mapError(err)
}

func (s *MembershipStore) Delete(ctx context.Context, personID, groupID int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM memberships WHERE person_id = $1 AND group_id = $2`,
		personID, groupID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (s *MembershipStore) DeleteByPersonID(ctx context.Context, personID int64) (int64, error) {
	return s.deleteWhere(ctx, `DELETE FROM memberships WHERE person_id = $1`, personID)
}

func (s *MembershipStore) DeleteByGroupID(ctx context.Context, groupID int64) (int64, error) {
	return s.deleteWhere(ctx, `DELETE FROM memberships WHERE group_id = $1`, groupID)
}

func (s *MembershipStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM memberships`)
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}

func (s *MembershipStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memberships`).Scan(&count)
	return count, mapError(err)
}

func (s *MembershipStore) list(ctx context.Context, query string, arg any) ([]model.Membership, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	memberships := make([]model.Membership, 0)
	for rows.Next() {
		var m model.Membership
		if err := rows.Scan(&m.PersonID, &m.GroupID); err != nil {
			return nil, mapError(err)
		}
		memberships = append(memberships, m)
	}
	return memberships, mapError(rows.Err())
}

func (s *MembershipStore) deleteWhere(ctx context.Context, query string, arg any) (int64, error) {
	result, err := s.db.ExecContext(ctx, query, arg)
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}
