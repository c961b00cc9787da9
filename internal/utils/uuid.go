package utils

import "github.com/google/uuid"

// IDGenerator hands out identifiers for records created by the stub backend.
type IDGenerator struct {
	prefix string
}

// NewIDGenerator returns a generator whose ids start with prefix, e.g. "ORD-".
// An empty prefix yields bare UUIDs.
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix}
}

// Generate returns a time-ordered UUIDv7 with the configured prefix, falling
// back to a random v4 when the clock source fails.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}
