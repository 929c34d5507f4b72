package repository

import (
	"context"
	"errors"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// AdministratorRepository handles administrator data access. The auth0id is
// the record key; the username carries a unique index (see Migrate).
type AdministratorRepository struct {
	db database.Database
}

// NewAdministratorRepository creates a new administrator repository
func NewAdministratorRepository(db database.Database) *AdministratorRepository {
	return &AdministratorRepository{db: db}
}

// GetAll retrieves all administrators ordered by username
func (r *AdministratorRepository) GetAll(ctx context.Context) ([]model.Administrator, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM administrator ORDER BY username`, nil)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	administrators := make([]model.Administrator, 0, len(rows))
	for _, row := range rows {
		administrator, err := parseAdministrator(row)
		if err != nil {
			return nil, err
		}
		administrators = append(administrators, *administrator)
	}
	return administrators, nil
}

// GetByAuth0ID retrieves an administrator by auth0id
func (r *AdministratorRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*model.Administrator, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::thing('administrator', $auth0id)`,
		map[string]interface{}{"auth0id": auth0ID})
	if err != nil {
		return nil, err
	}
	return parseAdministrator(result)
}

// GetByUsername retrieves an administrator by username
func (r *AdministratorRepository) GetByUsername(ctx context.Context, username string) (*model.Administrator, error) {
	result, err := r.db.QueryOne(ctx,
		`SELECT * FROM administrator WHERE username = $username LIMIT 1`,
		map[string]interface{}{"username": username})
	if err != nil {
		return nil, err
	}
	return parseAdministrator(result)
}

// Create persists a new administrator. A colliding auth0id or username
// surfaces as database.ErrDuplicate.
func (r *AdministratorRepository) Create(ctx context.Context, a *model.Administrator) error {
	query := `
		CREATE ONLY type::thing('administrator', $auth0id) CONTENT {
			username: $username,
			email: $email
		} RETURN AFTER
	`
	vars := map[string]interface{}{
		"auth0id":  a.Auth0ID,
		"username": a.Username,
		"email":    a.Email,
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

// Update overwrites an existing administrator's mutable fields. A username
// collision surfaces as database.ErrDuplicate.
func (r *AdministratorRepository) Update(ctx context.Context, a *model.Administrator) error {
	query := `
		UPDATE type::thing('administrator', $auth0id) CONTENT {
			username: $username,
			email: $email
		} RETURN AFTER
	`
	vars := map[string]interface{}{
		"auth0id":  a.Auth0ID,
		"username": a.Username,
		"email":    a.Email,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isDuplicateError(err) {
			return database.ErrDuplicate
		}
		return err
	}
	parsed, err := parseAdministrator(result)
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// Delete removes an administrator by auth0id
func (r *AdministratorRepository) Delete(ctx context.Context, auth0ID string) error {
	vars := map[string]interface{}{"auth0id": auth0ID}
	if _, err := r.db.QueryOne(ctx, `SELECT id FROM type::thing('administrator', $auth0id)`, vars); err != nil {
		return err
	}
	return r.db.Execute(ctx, `DELETE type::thing('administrator', $auth0id)`, vars)
}

// DeleteMany removes the given administrators, returning how many existed
func (r *AdministratorRepository) DeleteMany(ctx context.Context, auth0IDs []string) (int64, error) {
	var removed int64
	for _, auth0ID := range auth0IDs {
		err := r.Delete(ctx, auth0ID)
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

// DeleteAll removes every administrator, returning the count removed
func (r *AdministratorRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Query(ctx, `DELETE administrator RETURN BEFORE`, nil)
	if err != nil {
		return 0, err
	}
	rows, _ := extractQueryResults(result)
	return int64(len(rows)), nil
}

// Count returns the number of administrators
func (r *AdministratorRepository) Count(ctx context.Context) (int64, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM administrator GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parseAdministrator(result interface{}) (*model.Administrator, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrNotFound
	}
	return &model.Administrator{
		Auth0ID:  recordString(data["id"]),
		Username: getString(data, "username"),
		Email:    getString(data, "email"),
	}, nil
}
