package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/forgo/roster/api/internal/model"
)

// GroupStore persists groups in PostgreSQL
type GroupStore struct {
	db *sql.DB
}

// NewGroupStore creates a PostgreSQL-backed group store
func NewGroupStore(db *sql.DB) *GroupStore {
	return &GroupStore{db: db}
}

const groupColumns = `id, name, description, color, target`

func (s *GroupStore) GetAll(ctx context.Context) ([]model.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM groups ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	groups := make([]model.Group, 0)
	for rows.Next() {
		var g model.Group
		if err := scanGroup(rows, &g); err != nil {
			return nil, mapError(err)
		}
		groups = append(groups, g)
	}
	return groups, mapError(rows.Err())
}

func (s *GroupStore) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	var g model.Group
	row := s.db.QueryRowContext(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
	if err := scanGroup(row, &g); err != nil {
		return nil, mapError(err)
	}
	return &g, nil
}

func (s *GroupStore) Create(ctx context.Context, g *model.Group) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO groups (name, description, color, target)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		g.Name, g.Description, g.Color, g.Target,
	).Scan(&g.ID)
	return mapError(err)
}

func (s *GroupStore) Update(ctx context.Context, g *model.Group) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE groups SET name = $2, description = $3, color = $4, target = $5 WHERE id = $1`,
		g.ID, g.Name, g.Description, g.Color, g.Target)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (s *GroupStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (s *GroupStore) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM groups WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}

func (s *GroupStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM groups`)
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}

func (s *GroupStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count)
	return count, mapError(err)
}

func scanGroup(row scanner, g *model.Group) error {
	return row.Scan(&g.ID, &g.Name, &g.Description, &g.Color, &g.Target)
}
