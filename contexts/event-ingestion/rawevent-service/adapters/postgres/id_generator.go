package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator assigns opaque UUIDv4 identifiers to stored records.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
