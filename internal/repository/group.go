package repository

import (
	"context"
	"errors"

	"github.com/forgo/roster/api/internal/database"
	"github.com/forgo/roster/api/internal/model"
)

// GroupRepository handles group data access
type GroupRepository struct {
	db database.Database
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{db: db}
}

// GetAll retrieves all groups ordered by id
func (r *GroupRepository) GetAll(ctx context.Context) ([]model.Group, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM group ORDER BY id`, nil)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	groups := make([]model.Group, 0, len(rows))
	for _, row := range rows {
		group, err := parseGroup(row)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

// GetByID retrieves a group by id
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::thing('group', $id)`,
		map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	return parseGroup(result)
}

// Create persists a new group and assigns its id from the group sequence
func (r *GroupRepository) Create(ctx context.Context, g *model.Group) error {
	query := `
		LET $seq = (UPSERT ONLY sequence:group SET value += 1);
		CREATE ONLY type::thing('group', $seq.value) CONTENT {
			name: $name,
			description: $description,
			color: $color,
			target: $target
		} RETURN AFTER;
	`
	vars := map[string]interface{}{
		"name":        g.Name,
		"description": g.Description,
		"color":       g.Color,
		"target":      g.Target,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := lastRecord(result)
	if err != nil {
		return err
	}
	parsed, err := parseGroup(created)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

// Update overwrites an existing group
func (r *GroupRepository) Update(ctx context.Context, g *model.Group) error {
	query := `
		UPDATE type::thing('group', $id) CONTENT {
			name: $name,
			description: $description,
			color: $color,
			target: $target
		} RETURN AFTER
	`
	vars := map[string]interface{}{
		"id":          g.ID,
		"name":        g.Name,
		"description": g.Description,
		"color":       g.Color,
		"target":      g.Target,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}
	parsed, err := parseGroup(result)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

// Delete removes a group by id
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	vars := map[string]interface{}{"id": id}
	if _, err := r.db.QueryOne(ctx, `SELECT id FROM type::thing('group', $id)`, vars); err != nil {
		return err
	}
	return r.db.Execute(ctx, `DELETE type::thing('group', $id)`, vars)
}

// DeleteMany removes the given groups, returning how many existed
func (r *GroupRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
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

// DeleteAll removes every group, returning the count removed
func (r *GroupRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Query(ctx, `DELETE group RETURN BEFORE`, nil)
	if err != nil {
		return 0, err
	}
	rows, _ := extractQueryResults(result)
	return int64(len(rows)), nil
}

// Count returns the number of groups
func (r *GroupRepository) Count(ctx context.Context) (int64, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM group GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parseGroup(result interface{}) (*model.Group, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrNotFound
	}
	return &model.Group{
		ID:          recordNumber(data["id"]),
		Name:        getString(data, "name"),
		Description: getString(data, "description"),
		Color:       getStringPtr(data, "color"),
		Target:      getStringPtr(data, "target"),
	}, nil
}
