package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventspace/internal/domain"
)

type eventRegistrationRepository struct {
	DB *sql.DB
}

func NewEventRegistrationRepository(db *sql.DB) domain.EventRegistrationRepository {
	return &eventRegistrationRepository{
		DB: db,
	}
}

func (r *eventRegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	query := `
		INSERT INTO event_registrations (id, event_id, participant_name, participant_email, participant_phone, registration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.EventID, reg.ParticipantName, reg.ParticipantEmail,
		nullString(reg.ParticipantPhone), reg.RegistrationDate, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			// 23505: duplicate (event_id, participant_email).
			// 23503: the event was deleted concurrently.
			switch pqErr.Code {
			case "23505":
				return domain.ErrAlreadyRegistered
			case "23503":
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func scanRegistration(row interface{ Scan(...any) error }) (*domain.EventRegistration, error) {
	reg := &domain.EventRegistration{}
	var phoneNull sql.NullString
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.ParticipantName, &reg.ParticipantEmail,
		&phoneNull, &reg.RegistrationDate, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phoneNull.Valid {
		reg.ParticipantPhone = &phoneNull.String
	}
	return reg, nil
}

func (r *eventRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.EventRegistration, error) {
	query := `
		SELECT id, event_id, participant_name, participant_email, participant_phone, registration_date, created_at, updated_at
		FROM event_registrations
		WHERE id = $1
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *eventRegistrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventRegistration, error) {
	query := `
		SELECT id, event_id, participant_name, participant_email, participant_phone, registration_date, created_at, updated_at
		FROM event_registrations
		WHERE event_id = $1
		ORDER BY registration_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.EventRegistration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
