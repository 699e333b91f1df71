package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for client-generated
// records (local test notifications). Falls back to a random UUID when the
// v7 source is unavailable.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
