package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/forgo/roster/api/internal/model"
)

// AdministratorStore persists administrators in PostgreSQL
type AdministratorStore struct {
	db *sql.DB
}

// NewAdministratorStore creates a PostgreSQL-backed administrator store
func NewAdministratorStore(db *sql.DB) *AdministratorStore {
	return &AdministratorStore{db: db}
}

func (s *AdministratorStore) GetAll(ctx context.Context) ([]model.Administrator, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT auth0_id, username, email FROM administrators ORDER BY username`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	administrators := make([]model.Administrator, 0)
	for rows.Next() {
		var a model.Administrator
		if err := rows.Scan(&a.Auth0ID, &a.Username, &a.Email); err != nil {
			return nil, mapError(err)
		}
		administrators = append(administrators, a)
	}
	return administrators, mapError(rows.Err())
}

func (s *AdministratorStore) GetByAuth0ID(ctx context.Context, auth0ID string) (*model.Administrator, error) {
	return s.getOne(ctx,
		`SELECT auth0_id, username, email FROM administrators WHERE auth0_id = $1`, auth0ID)
}

func (s *AdministratorStore) GetByUsername(ctx context.Context, username string) (*model.Administrator, error) {
	return s.getOne(ctx,
		`SELECT auth0_id, username, email FROM administrators WHERE username = $1`, username)
}

func (s *AdministratorStore) getOne(ctx context.Context, query string, arg any) (*model.Administrator, error) {
	var a model.Administrator
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&a.Auth0ID, &a.Username, &a.Email)
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (s *AdministratorStore) Create(ctx context.Context, a *model.Administrator) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO administrators (auth0_id, username, email) VALUES ($1, $2, $3)`,
		a.Auth0ID, a.Username, a.Email)
	return mapError(err)
}

func (s *AdministratorStore) Update(ctx context.Context, a *model.Administrator) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE administrators SET username = $2, email = $3 WHERE auth0_id = $1`,
		a.Auth0ID, a.Username, a.Email)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (s *AdministratorStore) Delete(ctx context.Context, auth0ID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM administrators WHERE auth0_id = $1`, auth0ID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (s *AdministratorStore) DeleteMany(ctx context.Context, auth0IDs []string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM administrators WHERE auth0_id = ANY($1)`, pq.Array(auth0IDs))
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}

func (s *AdministratorStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM administrators`)
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}

func (s *AdministratorStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM administrators`).Scan(&count)
	return count, mapError(err)
}
