package repository

import (
	"context"
	"fmt"

	"github.com/forgo/roster/api/internal/database"
)

// Migrate defines the tables and indexes the repositories rely on. Every
// statement is idempotent, so it is safe to run at each startup.
func Migrate(ctx context.Context, db database.Database) error {
	statements := []string{
		`DEFINE TABLE IF NOT EXISTS person SCHEMALESS`,
		`DEFINE TABLE IF NOT EXISTS group SCHEMALESS`,
		`DEFINE TABLE IF NOT EXISTS administrator SCHEMALESS`,
		`DEFINE TABLE IF NOT EXISTS membership SCHEMALESS`,
		`DEFINE TABLE IF NOT EXISTS sequence SCHEMALESS`,
		`DEFINE INDEX IF NOT EXISTS administrator_username ON administrator FIELDS username UNIQUE`,
		`DEFINE INDEX IF NOT EXISTS membership_person ON membership FIELDS person_id`,
		`DEFINE INDEX IF NOT EXISTS membership_group ON membership FIELDS group_id`,
	}
	for _, stmt := range statements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
