package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/forgo/roster/api/internal/model"
)

// PersonStore persists people in PostgreSQL
type PersonStore struct {
	db *sql.DB
}

// NewPersonStore creates a PostgreSQL-backed person store
func NewPersonStore(db *sql.DB) *PersonStore {
	return &PersonStore{db: db}
}

const personColumns = `id, name, email, phone_number, bio, studies_or_job, birthdate`

func (s *PersonStore) GetAll(ctx context.Context) ([]model.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+personColumns+` FROM people ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	people := make([]model.Person, 0)
	for rows.Next() {
		var p model.Person
		if err := scanPerson(rows, &p); err != nil {
			return nil, mapError(err)
		}
		people = append(people, p)
	}
	return people, mapError(rows.Err())
}

func (s *PersonStore) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	var p model.Person
	row := s.db.QueryRowContext(ctx,
		`SELECT `+personColumns+` FROM people WHERE id = $1`, id)
	if err := scanPerson(row, &p); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (s *PersonStore) Create(ctx context.Context, p *model.Person) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO people (name, email, phone_number, bio, studies_or_job, birthdate)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.Name, p.Email, p.PhoneNumber, p.Bio, p.StudiesOrJob, p.Birthdate,
	).Scan(&p.ID)
	return mapError(err)
}

func (s *PersonStore) Update(ctx context.Context, p *model.Person) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE people
		 SET name = $2, email = $3, phone_number = $4, bio = $5, studies_or_job = $6, birthdate = $7
		 WHERE id = $1`,
		p.ID, p.Name, p.Email, p.PhoneNumber, p.Bio, p.StudiesOrJob, p.Birthdate)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (s *PersonStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (s *PersonStore) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM people WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}

func (s *PersonStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM people`)
	if err != nil {
		return 0, mapError(err)
	}
	removed, err := result.RowsAffected()
	return removed, mapError(err)
}

func (s *PersonStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&count)
	return count, mapError(err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(row scanner, p *model.Person) error {
	return row.Scan(&p.ID, &p.Name, &p.Email, &p.PhoneNumber, &p.Bio, &p.StudiesOrJob, &p.Birthdate)
}
