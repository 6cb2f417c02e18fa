package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventspace/internal/domain"
	"eventspace/internal/identity"
)

type eventService struct {
	eventRepo        domain.EventRepository
	organizerRepo    domain.OrganizerRepository
	registrationRepo domain.EventRegistrationRepository
	ids              identity.Generator
	contextTimeout   time.Duration
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(
	eventRepo domain.EventRepository,
	organizerRepo domain.OrganizerRepository,
	registrationRepo domain.EventRegistrationRepository,
	ids identity.Generator,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		organizerRepo:    organizerRepo,
		registrationRepo: registrationRepo,
		ids:              ids,
		contextTimeout:   timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event, org *domain.OrganizerInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEvent(event); err != nil {
		return err
	}

	var organizerID string
	if org != nil && strings.TrimSpace(org.Name) != "" {
		id, err := s.ensureOrganizer(ctx, org)
		if err != nil {
			return err
		}
		organizerID = id
	}

	now := time.Now()
	event.ID = s.ids.NewID()
	event.CreatedAt = now
	event.UpdatedAt = now

	// No duplicate pre-check here: the (title, start_date) constraint decides
	// under concurrency and the repository reports it as ErrDuplicateEvent.
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			return domain.ErrDuplicateEvent
		}
		return fmt.Errorf("create event: %w", err)
	}

	if organizerID != "" {
		if err := s.organizerRepo.Link(ctx, event.ID, organizerID); err != nil {
			return fmt.Errorf("link organizer: %w", err)
		}
	}
	return nil
}

// ensureOrganizer resolves the organizer by name, creating it when missing.
// When the organizer already exists and new details are supplied, they are
// merged onto the existing record.
func (s *eventService) ensureOrganizer(ctx context.Context, in *domain.OrganizerInput) (string, error) {
	name := strings.TrimSpace(in.Name)

	existing, err := s.organizerRepo.GetByName(ctx, name)
	if err == nil {
		if in.Description != nil || in.ImagePath != nil {
			existing.Description = in.Description
			existing.ImagePath = in.ImagePath
			existing.UpdatedAt = time.Now()
			if err := s.organizerRepo.Update(ctx, existing); err != nil {
				return "", fmt.Errorf("update organizer: %w", err)
			}
		}
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("get organizer: %w", err)
	}

	now := time.Now()
	org := &domain.Organizer{
		ID:          s.ids.NewID(),
		Name:        name,
		Description: in.Description,
		ImagePath:   in.ImagePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.organizerRepo.Create(ctx, org); err != nil {
		if errors.Is(err, domain.ErrDuplicateOrganizer) {
			// Lost a create race; the other writer's organizer wins.
			winner, gerr := s.organizerRepo.GetByName(ctx, name)
			if gerr != nil {
				return "", fmt.Errorf("get organizer after conflict: %w", gerr)
			}
			return winner.ID, nil
		}
		return "", fmt.Errorf("create organizer: %w", err)
	}
	return org.ID, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.EventWithOrganizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	org, err := s.organizerRepo.GetByEventID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get organizer for event: %w", err)
	}
	return &domain.EventWithOrganizer{Event: event, Organizer: org}, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateEvent) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Registrations and organizer links go with the event (ON DELETE CASCADE).
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) RegisterParticipant(ctx context.Context, eventID string, p domain.ParticipantInput) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: participant_name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Email) == "" {
		return nil, fmt.Errorf("%w: participant_email is required", domain.ErrInvalidInput)
	}

	// Ensure the event exists so a missing event surfaces as not-found rather
	// than a foreign key failure.
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := time.Now()
	reg := &domain.EventRegistration{
		ID:               s.ids.NewID(),
		EventID:          eventID,
		ParticipantName:  strings.TrimSpace(p.Name),
		ParticipantEmail: strings.ToLower(strings.TrimSpace(p.Email)),
		ParticipantPhone: p.Phone,
		RegistrationDate: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

func (s *eventService) GetRegistrationByID(ctx context.Context, eventID, registrationID string) (*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	// A registration reached through another event's path is not exposed.
	if reg.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (s *eventService) ListRegistrations(ctx context.Context, eventID string) ([]*domain.EventRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func validateEvent(e *domain.Event) error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case strings.TrimSpace(e.Description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	case strings.TrimSpace(e.ShortDescription) == "":
		return fmt.Errorf("%w: short_description is required", domain.ErrInvalidInput)
	case strings.TrimSpace(e.Location) == "":
		return fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	case e.StartDate.IsZero():
		return fmt.Errorf("%w: start_date is required", domain.ErrInvalidInput)
	}
	return nil
}
