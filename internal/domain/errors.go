package domain

import "errors"

// Sentinel errors shared across repositories and services. Repositories
// translate storage-level failures (sql.ErrNoRows, unique violations) into
// these so callers can map them to response codes without inspecting
// driver errors.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEvent is returned when an event with the same title and
	// start date already exists.
	ErrDuplicateEvent = errors.New("event with this title and start date already exists")

	// ErrDuplicateOrganizer is returned when an organizer with the same name
	// already exists.
	ErrDuplicateOrganizer = errors.New("organizer with this name already exists")

	// ErrAlreadyRegistered is returned when the same email registers twice
	// for one event.
	ErrAlreadyRegistered = errors.New("participant already registered for this event")

	// ErrDuplicateSpace is returned when a coworking space with the same name
	// and location already exists.
	ErrDuplicateSpace = errors.New("coworking space with this name and location already exists")

	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)
