package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the two tables if absent. Attendee rows are owned
// by their event: the foreign key cascades on delete, and the
// (event_identifier, user_name) unique constraint makes per-event name
// uniqueness hold even under concurrent registrations.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		identifier    VARCHAR(8)   PRIMARY KEY,
		creator_token VARCHAR(64)  NOT NULL,
		title         VARCHAR(128) NOT NULL,
		location      VARCHAR(64)  NOT NULL,
		time          TIMESTAMPTZ  NOT NULL,
		creator_name  VARCHAR(64),
		description   VARCHAR(256),
		image         VARCHAR(256)
	)`,
	`CREATE TABLE IF NOT EXISTS attendees (
		user_identifier  VARCHAR(8)  PRIMARY KEY,
		event_identifier VARCHAR(8)  NOT NULL REFERENCES events (identifier) ON DELETE CASCADE,
		user_token       VARCHAR(64) NOT NULL,
		user_name        VARCHAR(64) NOT NULL,
		first_name       VARCHAR(64),
		last_name        VARCHAR(64),
		email            VARCHAR(64),
		phone            VARCHAR(16),
		CONSTRAINT attendees_event_user_name_key UNIQUE (event_identifier, user_name)
	)`,
}

// EnsureSchema creates the tables if they do not exist. Called once at
// process start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
