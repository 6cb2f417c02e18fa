package domain

import (
	"context"
	"time"
)

// Event represents a published event.
// swagger:model Event
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	StartDate        time.Time `json:"start_date"`
	Location         string    `json:"location"`
	ImagePath        *string   `json:"image_path"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is assigned by the
// service from the identity generator before create.
func NewEvent(title, description, shortDescription, location string, startDate time.Time, imagePath *string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:            title,
		Description:      description,
		ShortDescription: shortDescription,
		StartDate:        startDate,
		Location:         location,
		ImagePath:        imagePath,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// EventWithOrganizer bundles an event with its organizer, if any.
type EventWithOrganizer struct {
	Event     *Event     `json:"event"`
	Organizer *Organizer `json:"organizer"`
}

// EventUpdate carries the optional fields of a partial event update.
// Nil fields are left unchanged.
type EventUpdate struct {
	Title            *string
	Description      *string
	ShortDescription *string
	StartDate        *time.Time
	Location         *string
	ImagePath        *string
}

// EventRepository defines the interface for event storage.
// Create and Update return ErrDuplicateEvent when the (title, start_date)
// uniqueness constraint is violated.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// OrganizerInput holds the optional organizer details supplied on event create.
type OrganizerInput struct {
	Name        string
	Description *string
	ImagePath   *string
}

// EventService defines the business logic for events and registrations.
type EventService interface {
	// CreateEvent creates the event, attaching an organizer by name when org
	// is non-nil (reusing an existing organizer with that name if present).
	CreateEvent(ctx context.Context, event *Event, org *OrganizerInput) error
	GetEventByID(ctx context.Context, id string) (*EventWithOrganizer, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	RegisterParticipant(ctx context.Context, eventID string, p ParticipantInput) (*EventRegistration, error)
	ListRegistrations(ctx context.Context, eventID string) ([]*EventRegistration, error)
	// GetRegistrationByID returns ErrNotFound when the registration does not
	// exist or belongs to a different event.
	GetRegistrationByID(ctx context.Context, eventID, registrationID string) (*EventRegistration, error)
}
