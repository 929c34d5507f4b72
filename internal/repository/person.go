package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// PersonRepository handles person data access
type PersonRepository struct {
	db database.Database
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db database.Database) *PersonRepository {
	return &PersonRepository{db: db}
}

// GetAll retrieves all people ordered by id
func (r *PersonRepository) GetAll(ctx context.Context) ([]model.Person, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM person ORDER BY id`, nil)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	people := make([]model.Person, 0, len(rows))
	for _, row := range rows {
		person, err := parsePerson(row)
		if err != nil {
			return nil, err
		}
		people = append(people, *person)
	}
	return people, nil
}

// GetByID retrieves a person by id
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::thing('person', $id)`,
		map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	return parsePerson(result)
}

// Create persists a new person and assigns its id from the person sequence
func (r *PersonRepository) Create(ctx context.Context, p *model.Person) error {
	query := `
		LET $seq = (UPSERT ONLY sequence:person SET value += 1);
		CREATE ONLY type::thing('person', $seq.value) CONTENT {
			name: $name,
			email: $email,
			phoneNumber: $phone_number,
			bio: $bio,
			studiesOrJob: $studies_or_job,
			birthdate: $birthdate
		} RETURN AFTER;
	`
	vars := map[string]interface{}{
		"name":           p.Name,
		"email":          p.Email,
		"phone_number":   p.PhoneNumber,
		"bio":            p.Bio,
		"studies_or_job": p.StudiesOrJob,
		"birthdate":      birthdateVar(p.Birthdate),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := lastRecord(result)
	if err != nil {
		return err
	}
	parsed, err := parsePerson(created)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

// Update overwrites an existing person. The caller supplies the full entity;
// partial merging is the service's concern.
func (r *PersonRepository) Update(ctx context.Context, p *model.Person) error {
	query := `
		UPDATE type::thing('person', $id) CONTENT {
			name: $name,
			email: $email,
			phoneNumber: $phone_number,
			bio: $bio,
			studiesOrJob: $studies_or_job,
			birthdate: $birthdate
		} RETURN AFTER
	`
	vars := map[string]interface{}{
		"id":             p.ID,
		"name":           p.Name,
		"email":          p.Email,
		"phone_number":   p.PhoneNumber,
		"bio":            p.Bio,
		"studies_or_job": p.StudiesOrJob,
		"birthdate":      birthdateVar(p.Birthdate),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		// UPDATE of a missing record yields an empty result set
		if errors.Is(err, database.ErrNotFound) {
			return database.ErrNotFound
		}
		return err
	}
	parsed, err := parsePerson(result)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

// Delete removes a person by id
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	vars := map[string]interface{}{"id": id}
	if _, err := r.db.QueryOne(ctx, `SELECT id FROM type::thing('person', $id)`, vars); err != nil {
		return err
	}
	return r.db.Execute(ctx, `DELETE type::thing('person', $id)`, vars)
}

// DeleteMany removes the given people, returning how many existed
func (r *PersonRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	var removed int64
	for _, id := range ids {
		err := r.Delete(ctx, id)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// DeleteAll removes every person, returning the count removed
func (r *PersonRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Query(ctx, `DELETE person RETURN BEFORE`, nil)
	if err != nil {
		return 0, err
	}
	rows, _ := extractQueryResults(result)
	return int64(len(rows)), nil
}

// Count returns the number of people
func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM person GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func birthdateVar(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parsePerson(result interface{}) (*model.Person, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrNotFound
	}
	return &model.Person{
		ID:           recordNumber(data["id"]),
		Name:         getString(data, "name"),
		Email:        getStringPtr(data, "email"),
		PhoneNumber:  getStringPtr(data, "phoneNumber"),
		Bio:          getStringPtr(data, "bio"),
		StudiesOrJob: getStringPtr(data, "studiesOrJob"),
		Birthdate:    getTimePtr(data, "birthdate"),
	}, nil
}

// lastRecord returns the last statement's single record from a multi-statement
// query response (the CREATE result when a LET precedes it).
func lastRecord(result []interface{}) (interface{}, error) {
	if len(result) == 0 {
		return nil, database.ErrQuery
	}
	last := result[len(result)-1]
	if resp, ok := last.(map[string]interface{}); ok {
		if inner, ok := resp["result"]; ok {
			if arr, ok := inner.([]interface{}); ok {
				if len(arr) == 0 {
					return nil, database.ErrQuery
				}
				return arr[0], nil
			}
			return inner, nil
		}
	}
	return last, nil
}
