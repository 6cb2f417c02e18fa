package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventspace/internal/domain"
)

type organizerRepository struct {
	DB *sql.DB
}

func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{
		DB: db,
	}
}

func (r *organizerRepository) Create(ctx context.Context, org *domain.Organizer) error {
	query := `
		INSERT INTO organizers (id, name, description, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		org.ID, org.Name, nullString(org.Description), nullString(org.ImagePath),
		org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateOrganizer
		}
		return err
	}
	return nil
}

func scanOrganizer(row interface{ Scan(...any) error }) (*domain.Organizer, error) {
	org := &domain.Organizer{}
	var descNull, imageNull sql.NullString
	err := row.Scan(&org.ID, &org.Name, &descNull, &imageNull, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		org.Description = &descNull.String
	}
	if imageNull.Valid {
		org.ImagePath = &imageNull.String
	}
	return org, nil
}

func (r *organizerRepository) GetByName(ctx context.Context, name string) (*domain.Organizer, error) {
	query := `
		SELECT id, name, description, image_path, created_at, updated_at
		FROM organizers
		WHERE name = $1
	`
	org, err := scanOrganizer(r.DB.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

func (r *organizerRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Organizer, error) {
	query := `
		SELECT o.id, o.name, o.description, o.image_path, o.created_at, o.updated_at
		FROM event_organizers eo
		JOIN organizers o ON o.id = eo.organizer_id
		WHERE eo.event_id = $1
		ORDER BY o.name
		LIMIT 1
	`
	org, err := scanOrganizer(r.DB.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

func (r *organizerRepository) Update(ctx context.Context, org *domain.Organizer) error {
	query := `
		UPDATE organizers
		SET description = COALESCE($1, description),
		    image_path = COALESCE($2, image_path),
		    updated_at = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query,
		nullString(org.Description), nullString(org.ImagePath), org.UpdatedAt, org.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *organizerRepository) Link(ctx context.Context, eventID, organizerID string) error {
	query := `
		INSERT INTO event_organizers (event_id, organizer_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, organizer_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, eventID, organizerID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
