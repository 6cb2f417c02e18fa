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

type coworkingService struct {
	spaceRepo      domain.CoworkingSpaceRepository
	bookingRepo    domain.CoworkingBookingRepository
	ids            identity.Generator
	dailyCapacity  int
	contextTimeout time.Duration
}

// NewCoworkingService creates a CoworkingService. dailyCapacity is the number
// of bookings that fills a space to 100% occupancy for one day.
func NewCoworkingService(
	spaceRepo domain.CoworkingSpaceRepository,
	bookingRepo domain.CoworkingBookingRepository,
	ids identity.Generator,
	dailyCapacity int,
	timeout time.Duration,
) domain.CoworkingService {
	return &coworkingService{
		spaceRepo:      spaceRepo,
		bookingRepo:    bookingRepo,
		ids:            ids,
		dailyCapacity:  dailyCapacity,
		contextTimeout: timeout,
	}
}

func (s *coworkingService) CreateSpace(ctx context.Context, space *domain.CoworkingSpace) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	switch {
	case strings.TrimSpace(space.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case strings.TrimSpace(space.Description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	case strings.TrimSpace(space.Location) == "":
		return fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	}

	now := time.Now()
	space.ID = s.ids.NewID()
	space.CreatedAt = now
	space.UpdatedAt = now

	// Uniqueness of (name, location) is decided by the constraint, not a
	// pre-check, so concurrent creates cannot both slip through.
	if err := s.spaceRepo.Create(ctx, space); err != nil {
		if errors.Is(err, domain.ErrDuplicateSpace) {
			return domain.ErrDuplicateSpace
		}
		return fmt.Errorf("create coworking space: %w", err)
	}
	return nil
}

func (s *coworkingService) GetSpaceByID(ctx context.Context, id string) (*domain.SpaceWithOccupancy, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get coworking space: %w", err)
	}

	occupancy, err := s.bookingRepo.ListOccupancy(ctx, id, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list occupancy: %w", err)
	}
	return &domain.SpaceWithOccupancy{Space: space, Occupancy: occupancy}, nil
}

func (s *coworkingService) ListSpaces(ctx context.Context) ([]*domain.CoworkingSpace, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	spaces, err := s.spaceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coworking spaces: %w", err)
	}
	return spaces, nil
}

func (s *coworkingService) UpdateSpace(ctx context.Context, id string, upd domain.SpaceUpdate) (*domain.CoworkingSpace, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	space, err := s.spaceRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateSpace) {
			return nil, err
		}
		return nil, fmt.Errorf("update coworking space: %w", err)
	}
	return space, nil
}

func (s *coworkingService) DeleteSpace(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Bookings and occupancy records go with the space (ON DELETE CASCADE).
	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete coworking space: %w", err)
	}
	return nil
}

func (s *coworkingService) CreateBooking(ctx context.Context, coworkingID string, in domain.BookingInput) (*domain.CoworkingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	switch {
	case in.Date.IsZero():
		return nil, fmt.Errorf("%w: booking_date is required", domain.ErrInvalidInput)
	case strings.TrimSpace(in.CustomerName) == "":
		return nil, fmt.Errorf("%w: customer_name is required", domain.ErrInvalidInput)
	case strings.TrimSpace(in.CustomerPhone) == "":
		return nil, fmt.Errorf("%w: customer_phone is required", domain.ErrInvalidInput)
	}

	if _, err := s.spaceRepo.GetByID(ctx, coworkingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get coworking space: %w", err)
	}

	now := time.Now()
	booking := &domain.CoworkingBooking{
		ID:            s.ids.NewID(),
		CoworkingID:   coworkingID,
		BookingDate:   truncateToDay(in.Date),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Bookings are never refused for capacity reasons; the derived occupancy
	// just clamps at 100. The repository refreshes the occupancy record in
	// the same transaction as the insert.
	if err := s.bookingRepo.Create(ctx, booking, s.ids.NewID(), s.dailyCapacity); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

func (s *coworkingService) GetOccupancy(ctx context.Context, coworkingID string, from, to *time.Time) ([]*domain.CoworkingOccupancy, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.spaceRepo.GetByID(ctx, coworkingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get coworking space: %w", err)
	}

	records, err := s.bookingRepo.ListOccupancy(ctx, coworkingID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list occupancy: %w", err)
	}
	return records, nil
}

// truncateToDay drops the time component; bookings and occupancy are keyed
// by calendar date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
