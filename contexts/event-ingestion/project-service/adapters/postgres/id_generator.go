package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator assigns opaque UUIDv4 identifiers to new projects.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
