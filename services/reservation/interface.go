package reservation

import (
	"context"

	"andeanscapes/models"
)

// ExperienceSource supplies the immutable configuration a reservation
// engine is constructed from.
type ExperienceSource interface {
	GetExperienceData(ctx context.Context, experienceID string) (*models.ExperienceData, error)
}

// ReservationService manages one reservation engine per (experience,
// device), hydrating it from the durable store on first access and
// persisting a snapshot after every transition.
type ReservationService interface {
	GetState(ctx context.Context, experienceID, deviceID string) (models.ReservationState, error)
	SetDate(ctx context.Context, experienceID, deviceID, dateID, label string, spots int) (models.ReservationState, error)
	SetPeopleCount(ctx context.Context, experienceID, deviceID string, count int) (models.ReservationState, error)
	SetRoomMode(ctx context.Context, experienceID, deviceID string, mode models.RoomMode) (models.ReservationState, error)
	SetTransportMode(ctx context.Context, experienceID, deviceID string, mode models.TransportMode) (models.ReservationState, error)
	SetContactField(ctx context.Context, experienceID, deviceID, field, value string) (models.ReservationState, error)
	SetTermsAccepted(ctx context.Context, experienceID, deviceID string, accepted bool) (models.ReservationState, error)
	Reset(ctx context.Context, experienceID, deviceID string) (models.ReservationState, error)
	IsComplete(ctx context.Context, experienceID, deviceID string) (bool, error)
	Close()
}
