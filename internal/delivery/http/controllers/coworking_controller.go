package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventspace/internal/delivery/http/helpers"
	"eventspace/internal/domain"
)

// dateLayout is the wire format for calendar dates (booking_date, occupancy range).
const dateLayout = "2006-01-02"

type CoworkingController struct {
	Logger  *slog.Logger
	Service domain.CoworkingService
}

func NewCoworkingController(logger *slog.Logger, svc domain.CoworkingService) *CoworkingController {
	return &CoworkingController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSpacesSuccessResponse is the success response envelope for GET /coworking (200).
type ListSpacesSuccessResponse struct {
	Data  []*domain.CoworkingSpace `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListSpaces godoc
// @Summary List all coworking spaces
// @Tags coworking
// @Produce json
// @Success 200 {object} controllers.ListSpacesSuccessResponse "data contains the spaces"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coworking [get]
func (c *CoworkingController) ListSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := c.Service.ListSpaces(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, spaces)
}

// CreateSpaceRequest is the request body for POST /coworking.
type CreateSpaceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	ImagePath   *string `json:"image_path"`
}

// Validate implements helpers.Validator.
func (c CreateSpaceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, "description is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "location is required")
	}
	return errs
}

// CreateSpaceSuccessResponse is the success response envelope for POST /coworking (201).
type CreateSpaceSuccessResponse struct {
	Data  *domain.CoworkingSpace `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// CreateSpace godoc
// @Summary Create a new coworking space
// @Description Creates a coworking space; id and timestamps are server-generated.
// @Tags coworking
// @Accept json
// @Produce json
// @Param space body CreateSpaceRequest true "Coworking space data"
// @Success 201 {object} controllers.CreateSpaceSuccessResponse "data contains the created space"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate name and location)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coworking [post]
func (c *CoworkingController) CreateSpace(w http.ResponseWriter, r *http.Request) {
	var req CreateSpaceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	space := &domain.CoworkingSpace{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ImagePath:   req.ImagePath,
	}
	if err := c.Service.CreateSpace(r.Context(), space); err != nil {
		if errors.Is(err, domain.ErrDuplicateSpace) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a coworking space with this name and location already exists")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, space)
}

// GetSpaceSuccessResponse is the success response envelope for GET /coworking/{spaceID} (200).
type GetSpaceSuccessResponse struct {
	Data  *domain.SpaceWithOccupancy `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// GetSpaceByID godoc
// @Summary Get a coworking space by ID
// @Description Returns the space and all of its occupancy records ordered by date.
// @Tags coworking
// @Produce json
// @Param spaceID path string true "Coworking space ID (UUID)"
// @Success 200 {object} controllers.GetSpaceSuccessResponse "data contains space and occupancy"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coworking/{spaceID} [get]
func (c *CoworkingController) GetSpaceByID(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := c.spaceIDFromPath(w, r)
	if !ok {
		return
	}
	result, err := c.Service.GetSpaceByID(r.Context(), spaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "coworking space not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// UpdateSpaceRequest is the request body for PATCH /coworking/{spaceID}.
// Only the provided fields are changed.
type UpdateSpaceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	ImagePath   *string `json:"image_path"`
}

// Validate implements helpers.Validator. Provided fields must be non-empty.
func (u UpdateSpaceRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) == "" {
		errs = append(errs, "location must not be empty")
	}
	return errs
}

// UpdateSpace godoc
// @Summary Update a coworking space
// @Description Partially updates a coworking space. Only the provided fields are changed.
// @Tags coworking
// @Accept json
// @Produce json
// @Param spaceID path string true "Coworking space ID (UUID)"
// @Param space body UpdateSpaceRequest true "Fields to update"
// @Success 200 {object} controllers.CreateSpaceSuccessResponse "data contains the updated space"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coworking/{spaceID} [patch]
func (c *CoworkingController) UpdateSpace(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := c.spaceIDFromPath(w, r)
	if !ok {
		return
	}
	var req UpdateSpaceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	space, err := c.Service.UpdateSpace(r.Context(), spaceID, domain.SpaceUpdate{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "coworking space not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateSpace) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "a coworking space with this name and location already exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, space)
}

// DeleteSpace godoc
// @Summary Delete a coworking space
// @Description Deletes the space along with its bookings and occupancy records.
// @Tags coworking
// @Param spaceID path string true "Coworking space ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coworking/{spaceID} [delete]
func (c *CoworkingController) DeleteSpace(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := c.spaceIDFromPath(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteSpace(r.Context(), spaceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "coworking space not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateBookingRequest is the request body for POST /coworking/{spaceID}/bookings.
type CreateBookingRequest struct {
	BookingDate   string `json:"booking_date"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// Validate implements helpers.Validator.
func (b CreateBookingRequest) Validate() []string {
	var errs []string
	if b.BookingDate == "" {
		errs = append(errs, "booking_date is required")
	} else if _, err := time.Parse(dateLayout, b.BookingDate); err != nil {
		errs = append(errs, "booking_date must be a date in YYYY-MM-DD format")
	}
	if strings.TrimSpace(b.CustomerName) == "" {
		errs = append(errs, "customer_name is required")
	}
	if strings.TrimSpace(b.CustomerPhone) == "" {
		errs = append(errs, "customer_phone is required")
	}
	return errs
}

// CreateBookingSuccessResponse is the success response envelope for POST /coworking/{spaceID}/bookings (201).
type CreateBookingSuccessResponse struct {
	Data  *domain.CoworkingBooking `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CreateBooking godoc
// @Summary Book a coworking space for a day
// @Description Creates a booking and refreshes the occupancy record for that date. Spaces have shared capacity, so bookings are never refused for capacity reasons.
// @Tags coworking
// @Accept json
// @Produce json
// @Param spaceID path string true "Coworking space ID (UUID)"
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} controllers.CreateBookingSuccessResponse "data contains the booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coworking/{spaceID}/bookings [post]
func (c *CoworkingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := c.spaceIDFromPath(w, r)
	if !ok {
		return
	}
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := time.Parse(dateLayout, req.BookingDate)
	booking, err := c.Service.CreateBooking(r.Context(), spaceID, domain.BookingInput{
		Date:          date,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "coworking space not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// GetOccupancySuccessResponse is the success response envelope for GET /coworking/{spaceID}/occupancy (200).
type GetOccupancySuccessResponse struct {
	Data  []*domain.CoworkingOccupancy `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// GetOccupancy godoc
// @Summary Get occupancy records for a coworking space
// @Description Returns occupancy records ordered by date ascending. Optional from and to query parameters (YYYY-MM-DD, inclusive) bound the range.
// @Tags coworking
// @Produce json
// @Param spaceID path string true "Coworking space ID (UUID)"
// @Param from query string false "Range start date (YYYY-MM-DD)"
// @Param to query string false "Range end date (YYYY-MM-DD)"
// @Success 200 {object} controllers.GetOccupancySuccessResponse "data contains the occupancy records"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /coworking/{spaceID}/occupancy [get]
func (c *CoworkingController) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := c.spaceIDFromPath(w, r)
	if !ok {
		return
	}
	var from, to *time.Time
	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from must be a date in YYYY-MM-DD format")
			return
		}
		from = &t
	}
	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "to must be a date in YYYY-MM-DD format")
			return
		}
		to = &t
	}
	records, err := c.Service.GetOccupancy(r.Context(), spaceID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "coworking space not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}

func (c *CoworkingController) spaceIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	spaceID := r.PathValue("spaceID")
	if spaceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing spaceID")
		return "", false
	}
	if !uuidRegex.MatchString(spaceID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid spaceID")
		return "", false
	}
	return spaceID, true
}
