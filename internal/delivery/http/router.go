package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventspace/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, coworkingController *controllers.CoworkingController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("PATCH /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)
	mux.HandleFunc("POST /events/{eventID}/registrations", eventController.Register)
	mux.HandleFunc("GET /events/{eventID}/registrations", eventController.ListRegistrations)
	mux.HandleFunc("GET /events/{eventID}/registrations/{registrationID}", eventController.GetRegistration)

	// Coworking
	mux.HandleFunc("GET /coworking", coworkingController.ListSpaces)
	mux.HandleFunc("POST /coworking", coworkingController.CreateSpace)
	mux.HandleFunc("GET /coworking/{spaceID}", coworkingController.GetSpaceByID)
	mux.HandleFunc("PATCH /coworking/{spaceID}", coworkingController.UpdateSpace)
	mux.HandleFunc("DELETE /coworking/{spaceID}", coworkingController.DeleteSpace)
	mux.HandleFunc("POST /coworking/{spaceID}/bookings", coworkingController.CreateBooking)
	mux.HandleFunc("GET /coworking/{spaceID}/occupancy", coworkingController.GetOccupancy)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
