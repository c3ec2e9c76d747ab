package reservation

import (
	"context"
	"fmt"

	"andeanscapes/models"
)

// storageVersion is bumped on snapshot schema changes so old persisted data
// is treated as "no data found" instead of being parsed.
const storageVersion = "v1"

// StorageKey returns the namespaced persistence key for an experience and
// device.
func StorageKey(experienceID, deviceID string) string {
	return fmt.Sprintf("andeanscapes:%s:%s:reservation:%s", experienceID, deviceID, storageVersion)
}

// Store persists reservation snapshots keyed per experience and device.
// Save is best-effort; Load returns (nil, nil) when no usable data exists,
// including when stored data does not match the current snapshot shape.
type Store interface {
	Save(ctx context.Context, experienceID, deviceID string, snap models.ReservationSnapshot) error
	Load(ctx context.Context, experienceID, deviceID string) (*models.ReservationSnapshot, error)
	Clear(ctx context.Context, experienceID, deviceID string) error
}
