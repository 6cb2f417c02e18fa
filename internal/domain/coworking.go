package domain

import (
	"context"
	"time"
)

// CoworkingSpace represents a bookable coworking space.
// swagger:model CoworkingSpace
type CoworkingSpace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImagePath   *string   `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CoworkingBooking represents one customer's booking of a space for a day.
// Spaces have shared capacity: any number of bookings may target the same
// space and date.
// swagger:model CoworkingBooking
type CoworkingBooking struct {
	ID            string    `json:"id"`
	CoworkingID   string    `json:"coworking_id"`
	BookingDate   time.Time `json:"booking_date"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CoworkingOccupancy is the derived utilization of a space on a day.
// Percentage is always within [0,100]; at most one record exists per
// (coworking_id, date).
// swagger:model CoworkingOccupancy
type CoworkingOccupancy struct {
	Date                time.Time `json:"date"`
	OccupancyPercentage int       `json:"occupancy_percentage"`
}

// SpaceWithOccupancy bundles a space with its occupancy records.
type SpaceWithOccupancy struct {
	Space     *CoworkingSpace       `json:"space"`
	Occupancy []*CoworkingOccupancy `json:"occupancy"`
}

// SpaceUpdate carries the optional fields of a partial space update.
// Nil fields are left unchanged.
type SpaceUpdate struct {
	Name        *string
	Description *string
	Location    *string
	ImagePath   *string
}

// BookingInput holds the customer fields supplied on booking create.
type BookingInput struct {
	Date          time.Time
	CustomerName  string
	CustomerPhone string
}

// CoworkingSpaceRepository defines the interface for coworking space storage.
// Create and Update return ErrDuplicateSpace when the (name, location)
// uniqueness constraint is violated.
type CoworkingSpaceRepository interface {
	Create(ctx context.Context, space *CoworkingSpace) error
	GetByID(ctx context.Context, id string) (*CoworkingSpace, error)
	List(ctx context.Context) ([]*CoworkingSpace, error)
	Update(ctx context.Context, id string, upd SpaceUpdate) (*CoworkingSpace, error)
	Delete(ctx context.Context, id string) error
}

// CoworkingBookingRepository defines storage operations for bookings and the
// occupancy records derived from them.
type CoworkingBookingRepository interface {
	// Create inserts the booking and upserts the occupancy record for the
	// booking's (space, date) in a single transaction. The occupancy
	// percentage is recomputed from the booking count against dailyCapacity
	// and clamped to [0,100]. Returns ErrNotFound when the space is gone.
	Create(ctx context.Context, booking *CoworkingBooking, occupancyID string, dailyCapacity int) error
	// ListOccupancy returns occupancy records for the space ordered by date
	// ascending. from and to bound the range when non-nil (inclusive).
	ListOccupancy(ctx context.Context, coworkingID string, from, to *time.Time) ([]*CoworkingOccupancy, error)
}

// CoworkingService defines the business logic for spaces, bookings, and
// occupancy reporting.
type CoworkingService interface {
	CreateSpace(ctx context.Context, space *CoworkingSpace) error
	GetSpaceByID(ctx context.Context, id string) (*SpaceWithOccupancy, error)
	ListSpaces(ctx context.Context) ([]*CoworkingSpace, error)
	UpdateSpace(ctx context.Context, id string, upd SpaceUpdate) (*CoworkingSpace, error)
	DeleteSpace(ctx context.Context, id string) error
	CreateBooking(ctx context.Context, coworkingID string, in BookingInput) (*CoworkingBooking, error)
	GetOccupancy(ctx context.Context, coworkingID string, from, to *time.Time) ([]*CoworkingOccupancy, error)
}
