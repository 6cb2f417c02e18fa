package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventspace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpaceID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

// fakeCoworkingService implements domain.CoworkingService for handler tests.
type fakeCoworkingService struct {
	createSpaceErr   error
	getSpaceErr      error
	getSpaceResult   *domain.SpaceWithOccupancy
	listSpacesErr    error
	listSpacesResult []*domain.CoworkingSpace
	updateSpaceErr   error
	updateResult     *domain.CoworkingSpace
	deleteSpaceErr   error
	createBookingErr error
	bookingResult    *domain.CoworkingBooking
	occupancyErr     error
	occupancyResult  []*domain.CoworkingOccupancy

	lastSpaceID      string
	lastBookingInput domain.BookingInput
	lastFrom         *time.Time
	lastTo           *time.Time
}

func (f *fakeCoworkingService) CreateSpace(ctx context.Context, space *domain.CoworkingSpace) error {
	if f.createSpaceErr != nil {
		return f.createSpaceErr
	}
	space.ID = testSpaceID
	return nil
}

func (f *fakeCoworkingService) GetSpaceByID(ctx context.Context, id string) (*domain.SpaceWithOccupancy, error) {
	f.lastSpaceID = id
	return f.getSpaceResult, f.getSpaceErr
}

func (f *fakeCoworkingService) ListSpaces(ctx context.Context) ([]*domain.CoworkingSpace, error) {
	return f.listSpacesResult, f.listSpacesErr
}

func (f *fakeCoworkingService) UpdateSpace(ctx context.Context, id string, upd domain.SpaceUpdate) (*domain.CoworkingSpace, error) {
	f.lastSpaceID = id
	return f.updateResult, f.updateSpaceErr
}

func (f *fakeCoworkingService) DeleteSpace(ctx context.Context, id string) error {
	f.lastSpaceID = id
	return f.deleteSpaceErr
}

func (f *fakeCoworkingService) CreateBooking(ctx context.Context, coworkingID string, in domain.BookingInput) (*domain.CoworkingBooking, error) {
	f.lastSpaceID = coworkingID
	f.lastBookingInput = in
	return f.bookingResult, f.createBookingErr
}

func (f *fakeCoworkingService) GetOccupancy(ctx context.Context, coworkingID string, from, to *time.Time) ([]*domain.CoworkingOccupancy, error) {
	f.lastSpaceID = coworkingID
	f.lastFrom = from
	f.lastTo = to
	return f.occupancyResult, f.occupancyErr
}

func TestCoworkingController_CreateSpace(t *testing.T) {
	validBody := `{"name": "Downtown Hub", "description": "Open desks", "location": "Main St 1"}`

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "success",
			body:       validBody,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate name and location",
			body:       validBody,
			serviceErr: domain.ErrDuplicateSpace,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing name",
			body:       `{"description": "Open desks", "location": "Main St 1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service error",
			body:       validBody,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCoworkingService{createSpaceErr: tt.serviceErr}
			ctrl := NewCoworkingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/coworking", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreateSpace(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				resp := decodeEnvelope(t, rr.Body)
				data := resp["data"].(map[string]any)
				assert.Equal(t, testSpaceID, data["id"])
			}
		})
	}
}

func TestCoworkingController_GetSpaceByID(t *testing.T) {
	tests := []struct {
		name       string
		spaceID    string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "success",
			spaceID:    testSpaceID,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid uuid",
			spaceID:    "42",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			spaceID:    testSpaceID,
			serviceErr: domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCoworkingService{
				getSpaceErr: tt.serviceErr,
				getSpaceResult: &domain.SpaceWithOccupancy{
					Space: &domain.CoworkingSpace{ID: testSpaceID, Name: "Downtown Hub"},
					Occupancy: []*domain.CoworkingOccupancy{
						{Date: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), OccupancyPercentage: 30},
					},
				},
			}
			ctrl := NewCoworkingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/coworking/"+tt.spaceID, nil)
			req.SetPathValue("spaceID", tt.spaceID)
			rr := httptest.NewRecorder()

			ctrl.GetSpaceByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				resp := decodeEnvelope(t, rr.Body)
				data := resp["data"].(map[string]any)
				space := data["space"].(map[string]any)
				assert.Equal(t, testSpaceID, space["id"])
				occupancy := data["occupancy"].([]any)
				assert.Len(t, occupancy, 1)
			}
		})
	}
}

func TestCoworkingController_UpdateSpace(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"success", `{"name": "Renamed Hub"}`, nil, http.StatusOK},
		{"empty name rejected", `{"name": ""}`, nil, http.StatusBadRequest},
		{"not found", `{"name": "Renamed Hub"}`, domain.ErrNotFound, http.StatusNotFound},
		{"rename collides", `{"name": "Renamed Hub"}`, domain.ErrDuplicateSpace, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCoworkingService{
				updateSpaceErr: tt.serviceErr,
				updateResult:   &domain.CoworkingSpace{ID: testSpaceID, Name: "Renamed Hub"},
			}
			ctrl := NewCoworkingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "http://test/coworking/"+testSpaceID, bytes.NewBufferString(tt.body))
			req.SetPathValue("spaceID", testSpaceID)
			rr := httptest.NewRecorder()

			ctrl.UpdateSpace(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCoworkingController_DeleteSpace(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"success", nil, http.StatusNoContent},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCoworkingService{deleteSpaceErr: tt.serviceErr}
			ctrl := NewCoworkingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/coworking/"+testSpaceID, nil)
			req.SetPathValue("spaceID", testSpaceID)
			rr := httptest.NewRecorder()

			ctrl.DeleteSpace(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCoworkingController_CreateBooking(t *testing.T) {
	validBody := `{"booking_date": "2026-05-10", "customer_name": "Alice", "customer_phone": "+49123"}`

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "success",
			body:       validBody,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "bad date format",
			body:       `{"booking_date": "10.05.2026", "customer_name": "Alice", "customer_phone": "+49123"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing customer name",
			body:       `{"booking_date": "2026-05-10", "customer_phone": "+49123"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "space not found",
			body:       validBody,
			serviceErr: domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCoworkingService{
				createBookingErr: tt.serviceErr,
				bookingResult: &domain.CoworkingBooking{
					ID:          "bk-1",
					CoworkingID: testSpaceID,
					BookingDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
				},
			}
			ctrl := NewCoworkingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/coworking/"+testSpaceID+"/bookings", bytes.NewBufferString(tt.body))
			req.SetPathValue("spaceID", testSpaceID)
			rr := httptest.NewRecorder()

			ctrl.CreateBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				resp := decodeEnvelope(t, rr.Body)
				data := resp["data"].(map[string]any)
				assert.Equal(t, "bk-1", data["id"])
				assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), fake.lastBookingInput.Date)
				assert.Equal(t, testSpaceID, fake.lastSpaceID)
			}
		})
	}
}

func TestCoworkingController_GetOccupancy(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		serviceErr error
		wantStatus int
		wantFrom   bool
		wantTo     bool
	}{
		{
			name:       "no range",
			wantStatus: http.StatusOK,
		},
		{
			name:       "bounded range",
			query:      "?from=2026-05-01&to=2026-05-31",
			wantStatus: http.StatusOK,
			wantFrom:   true,
			wantTo:     true,
		},
		{
			name:       "bad from format",
			query:      "?from=yesterday",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad to format",
			query:      "?to=2026-13-99",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "space not found",
			serviceErr: domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCoworkingService{
				occupancyErr: tt.serviceErr,
				occupancyResult: []*domain.CoworkingOccupancy{
					{Date: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), OccupancyPercentage: 50},
				},
			}
			ctrl := NewCoworkingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/coworking/"+testSpaceID+"/occupancy"+tt.query, nil)
			req.SetPathValue("spaceID", testSpaceID)
			rr := httptest.NewRecorder()

			ctrl.GetOccupancy(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				resp := decodeEnvelope(t, rr.Body)
				data := resp["data"].([]any)
				assert.Len(t, data, 1)
				assert.Equal(t, tt.wantFrom, fake.lastFrom != nil)
				assert.Equal(t, tt.wantTo, fake.lastTo != nil)
			}
		})
	}
}

func TestCoworkingController_ListSpaces(t *testing.T) {
	fake := &fakeCoworkingService{listSpacesResult: []*domain.CoworkingSpace{
		{ID: "cw-1", Name: "Downtown Hub"},
		{ID: "cw-2", Name: "Tech Village"},
	}}
	ctrl := NewCoworkingController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/coworking", nil)
	rr := httptest.NewRecorder()

	ctrl.ListSpaces(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope(t, rr.Body)
	data := resp["data"].([]any)
	assert.Len(t, data, 2)
}
