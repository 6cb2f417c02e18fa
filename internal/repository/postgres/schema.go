package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the backing tables and their uniqueness and
// cascade constraints. Uniqueness is enforced here, not in service code:
// concurrent inserts race on these constraints and the repositories
// translate the resulting violations into typed errors.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		short_description TEXT NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		location TEXT NOT NULL,
		image_path TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		CONSTRAINT uq_events_title_start_date UNIQUE (title, start_date)
	)`,
	`CREATE TABLE IF NOT EXISTS organizers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		image_path TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		CONSTRAINT uq_organizers_name UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS event_organizers (
		event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		organizer_id UUID NOT NULL REFERENCES organizers(id) ON DELETE CASCADE,
		PRIMARY KEY (event_id, organizer_id)
	)`,
	`CREATE TABLE IF NOT EXISTS event_registrations (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		participant_name TEXT NOT NULL,
		participant_email TEXT NOT NULL,
		participant_phone TEXT,
		registration_date TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		CONSTRAINT uq_event_registrations_event_email UNIQUE (event_id, participant_email)
	)`,
	`CREATE TABLE IF NOT EXISTS coworking_spaces (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		image_path TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		CONSTRAINT uq_coworking_spaces_name_location UNIQUE (name, location)
	)`,
	`CREATE TABLE IF NOT EXISTS coworking_bookings (
		id UUID PRIMARY KEY,
		coworking_id UUID NOT NULL REFERENCES coworking_spaces(id) ON DELETE CASCADE,
		booking_date DATE NOT NULL,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS coworking_occupancy (
		id UUID PRIMARY KEY,
		coworking_id UUID NOT NULL REFERENCES coworking_spaces(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		occupancy_percentage INT NOT NULL CHECK (occupancy_percentage BETWEEN 0 AND 100),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		CONSTRAINT uq_coworking_occupancy_space_date UNIQUE (coworking_id, date)
	)`,
}

// EnsureSchema creates any missing tables. It is safe to call on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
