package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator hands out identifiers for the stub API: sortable record ids
// and opaque tokens.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a v4 if the v7 clock read fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Token returns a random v4 UUID without dashes. Unlike Generate it carries
// no timestamp, so consecutive values share no prefix.
func (g *UUIDGenerator) Token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
