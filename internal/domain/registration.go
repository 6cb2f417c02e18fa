package domain

import (
	"context"
	"time"
)

// EventRegistration represents a participant's registration for an event.
// Registrations are removed together with their event.
// swagger:model EventRegistration
type EventRegistration struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	ParticipantName  string    `json:"participant_name"`
	ParticipantEmail string    `json:"participant_email"`
	ParticipantPhone *string   `json:"participant_phone"`
	RegistrationDate time.Time `json:"registration_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ParticipantInput holds the participant fields supplied on registration.
type ParticipantInput struct {
	Name  string
	Email string
	Phone *string
}

// EventRegistrationRepository defines storage operations for registrations.
// Create returns ErrAlreadyRegistered when the (event_id, participant_email)
// uniqueness constraint is violated and ErrNotFound when the event is gone.
type EventRegistrationRepository interface {
	Create(ctx context.Context, reg *EventRegistration) error
	GetByID(ctx context.Context, id string) (*EventRegistration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*EventRegistration, error)
}
