package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Run(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	events := newFakeEventRepo()
	orgs := newFakeOrganizerRepo()
	spaces := newFakeSpaceRepo()
	bookings := &fakeBookingRepo{}

	eventSvc := newTestEventService(events, orgs, newFakeRegistrationRepo())
	coworkingSvc := newTestCoworkingService(spaces, bookings, 10)
	seed := NewSeedService(eventSvc, coworkingSvc, logger)

	require.NoError(t, seed.Run(ctx))
	assert.Len(t, events.byID, 3)
	assert.Len(t, orgs.byName, 3)
	assert.Len(t, spaces.byID, 2)
	assert.NotNil(t, bookings.lastBooking)

	// A second run must not duplicate the sample data.
	require.NoError(t, seed.Run(ctx))
	assert.Len(t, events.byID, 3)
	assert.Len(t, spaces.byID, 2)
}
