package domain

import (
	"context"
	"time"
)

// Organizer represents an event organizer. Organizers are shared across
// events through the event_organizers association.
// swagger:model Organizer
type Organizer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ImagePath   *string   `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrganizerRepository defines the interface for organizer storage.
// Create returns ErrDuplicateOrganizer when the name is already taken.
type OrganizerRepository interface {
	Create(ctx context.Context, org *Organizer) error
	GetByName(ctx context.Context, name string) (*Organizer, error)
	GetByEventID(ctx context.Context, eventID string) (*Organizer, error)
	Update(ctx context.Context, org *Organizer) error
	// Link associates the organizer with the event in event_organizers.
	// Linking the same pair twice is a no-op.
	Link(ctx context.Context, eventID, organizerID string) error
}
