package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventspace/internal/domain"
)

// SeedService loads sample events, organizers, coworking spaces, and bookings
// for local development. Run is idempotent: it does nothing when data exists.
type SeedService struct {
	Events    domain.EventService
	Coworking domain.CoworkingService
	Logger    *slog.Logger
}

func NewSeedService(events domain.EventService, coworking domain.CoworkingService, logger *slog.Logger) *SeedService {
	return &SeedService{
		Events:    events,
		Coworking: coworking,
		Logger:    logger,
	}
}

func (s *SeedService) Run(ctx context.Context) error {
	events, err := s.Events.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("check existing events: %w", err)
	}
	spaces, err := s.Coworking.ListSpaces(ctx)
	if err != nil {
		return fmt.Errorf("check existing spaces: %w", err)
	}
	if len(events) > 0 && len(spaces) > 0 {
		s.Logger.Info("sample data already present, skipping seed")
		return nil
	}

	if len(events) == 0 {
		if err := s.seedEvents(ctx); err != nil {
			return err
		}
	}
	if len(spaces) == 0 {
		if err := s.seedCoworking(ctx); err != nil {
			return err
		}
	}
	s.Logger.Info("sample data loaded")
	return nil
}

func strPtr(s string) *string { return &s }

func (s *SeedService) seedEvents(ctx context.Context) error {
	now := time.Now()
	samples := []struct {
		event *domain.Event
		org   *domain.OrganizerInput
	}{
		{
			event: domain.NewEvent(
				"Tech Conference 2026",
				"A three-day conference featuring the latest in technology trends, with workshops, keynotes, and networking opportunities.",
				"Annual tech conference with workshops and keynotes",
				"Convention Center, Downtown",
				now.AddDate(0, 0, 30),
				strPtr("/uploads/events/tech_conference.jpg"),
				now, now,
			),
			org: &domain.OrganizerInput{
				Name:        "TechEvents Inc.",
				Description: strPtr("Leading technology event organizer"),
				ImagePath:   strPtr("/uploads/organizers/tech_events.png"),
			},
		},
		{
			event: domain.NewEvent(
				"Web Development Workshop",
				"Learn modern web development techniques from industry experts. Covers frontend frameworks, backend development, and deployment.",
				"Hands-on workshop for web developers",
				"Digital Academy, Tech District",
				now.AddDate(0, 0, 15),
				strPtr("/uploads/events/web_dev_workshop.jpg"),
				now, now,
			),
			org: &domain.OrganizerInput{
				Name:        "Code Masters",
				Description: strPtr("Coding education specialists"),
				ImagePath:   strPtr("/uploads/organizers/code_masters.png"),
			},
		},
		{
			event: domain.NewEvent(
				"Startup Pitch Night",
				"An evening where promising startups present their business ideas to potential investors, followed by Q&A and networking.",
				"Startups pitch to investors",
				"Innovation Hub, Financial District",
				now.AddDate(0, 0, 7),
				strPtr("/uploads/events/pitch_night.jpg"),
				now, now,
			),
			org: &domain.OrganizerInput{
				Name:        "Venture Connect",
				Description: strPtr("Connecting startups with investors"),
				ImagePath:   strPtr("/uploads/organizers/venture_connect.png"),
			},
		},
	}

	for _, sample := range samples {
		if err := s.Events.CreateEvent(ctx, sample.event, sample.org); err != nil {
			return fmt.Errorf("seed event %q: %w", sample.event.Title, err)
		}
	}
	s.Logger.Info("seeded events", "count", len(samples))
	return nil
}

func (s *SeedService) seedCoworking(ctx context.Context) error {
	spaces := []*domain.CoworkingSpace{
		{
			Name:        "Downtown Hub",
			Description: "A modern coworking space in the heart of downtown, with high-speed internet, meeting rooms, and a coffee bar.",
			Location:    "123 Main Street, Downtown",
			ImagePath:   strPtr("/uploads/coworking/downtown_hub.jpg"),
		},
		{
			Name:        "Tech Village",
			Description: "Collaborative workspace designed for tech startups and developers, with dedicated desks and private offices.",
			Location:    "456 Innovation Avenue, Tech District",
			ImagePath:   strPtr("/uploads/coworking/tech_village.jpg"),
		},
	}

	customers := []struct{ name, phone string }{
		{"Alice Johnson", "+1234567890"},
		{"Bob Smith", "+9876543210"},
		{"Charlie Brown", "+5554443333"},
	}

	today := time.Now()
	for _, space := range spaces {
		if err := s.Coworking.CreateSpace(ctx, space); err != nil {
			return fmt.Errorf("seed space %q: %w", space.Name, err)
		}

		// A few bookings per day over the next two weeks so occupancy data
		// is visible right away.
		for day := 0; day < 14; day++ {
			date := today.AddDate(0, 0, day)
			for j := 0; j <= day%3; j++ {
				c := customers[j]
				_, err := s.Coworking.CreateBooking(ctx, space.ID, domain.BookingInput{
					Date:          date,
					CustomerName:  c.name,
					CustomerPhone: c.phone,
				})
				if err != nil {
					return fmt.Errorf("seed booking for %q: %w", space.Name, err)
				}
			}
		}
	}
	s.Logger.Info("seeded coworking spaces", "count", len(spaces))
	return nil
}
