// Package postgres implements the service layer's store interfaces on
// PostgreSQL via database/sql and lib/pq. It mirrors the SurrealDB
// backend's semantics: missing rows surface as database.ErrNotFound and
// unique violations as database.ErrDuplicate.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/forgo/roster/api/internal/database"
)

// Open connects to PostgreSQL and verifies the connection
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", database.ErrConnection, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", database.ErrConnection, err)
	}
	return db, nil
}

// Migrate creates the tables the stores rely on. Every statement is
// idempotent, so it is safe to run at each startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT,
			phone_number TEXT,
			bio TEXT,
			studies_or_job TEXT,
			birthdate TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS groups (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			color TEXT,
			target TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS administrators (
			auth0_id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS memberships (
			person_id BIGINT NOT NULL REFERENCES people(id),
			group_id BIGINT NOT NULL REFERENCES groups(id),
			PRIMARY KEY (person_id, group_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// requireRow turns a zero-row write into database.ErrNotFound
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// mapError translates driver errors into the shared database sentinels
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return database.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return database.ErrDuplicate
	}
	return fmt.Errorf("%w: %v", database.ErrQuery, err)
}
