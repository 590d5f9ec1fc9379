package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers for request tracing. It prefers
// version 7 UUIDs, which sort chronologically, and falls back to v4 when the
// system clock source fails.
type UUIDGenerator struct{}

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
