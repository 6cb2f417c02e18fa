// Package identity generates unique identifiers for new entities.
package identity

import "github.com/google/uuid"

// Generator produces unique 128-bit identifiers. No coordination is needed
// between callers; collisions are negligible.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewGenerator returns a Generator backed by random (v4) UUIDs.
func NewGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
