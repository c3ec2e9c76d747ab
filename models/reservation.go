package models

// RoomMode selects the pricing/occupancy variant of a reservation.
type RoomMode string

const (
	RoomModePrivate RoomMode = "private"
	RoomModeCouple  RoomMode = "couple"
)

// TransportMode is how the guests get to the site.
type TransportMode string

const (
	TransportCarNo4x4 TransportMode = "car_no_4x4"
	TransportHave4x4  TransportMode = "have_4x4"
	TransportBus      TransportMode = "bus"
)

// ReservationContact holds the guest contact details. Email is optional.
type ReservationContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ReservationPricing is fully derived from the experience configuration and
// the people/room selection. It is recomputed by the engine, never set by
// callers and never trusted from persisted data.
type ReservationPricing struct {
	BasePricePerPerson float64 `json:"basePricePerPerson"`
	Total              float64 `json:"total"`
	DepositPercent     float64 `json:"depositPercent"`
	DepositAmount      int64   `json:"depositAmount"`
}

// ReservationState is the single mutable aggregate for one pending
// reservation of one experience.
type ReservationState struct {
	SelectedDateID    string             `json:"selectedDateId,omitempty"`
	SelectedDateLabel string             `json:"selectedDateLabel,omitempty"`
	AvailableSpots    *int               `json:"availableSpots,omitempty"`
	PeopleCount       int                `json:"peopleCount"`
	RoomMode          RoomMode           `json:"roomMode"`
	TransportMode     TransportMode      `json:"transportMode,omitempty"`
	Contact           ReservationContact `json:"contact"`
	TermsAccepted     bool               `json:"termsAccepted"`
	Pricing           ReservationPricing `json:"pricing"`
	IsHydrated        bool               `json:"-"`
}

// ReservationSnapshot is the persisted shape of a reservation. It mirrors
// ReservationState minus the hydration flag; pointer fields distinguish
// "absent in stored data" from zero values so a partial snapshot can be
// merged over defaults.
type ReservationSnapshot struct {
	SelectedDateID    string              `json:"selectedDateId,omitempty"`
	SelectedDateLabel string              `json:"selectedDateLabel,omitempty"`
	AvailableSpots    *int                `json:"availableSpots,omitempty"`
	PeopleCount       *int                `json:"peopleCount,omitempty"`
	RoomMode          RoomMode            `json:"roomMode,omitempty"`
	TransportMode     TransportMode       `json:"transportMode,omitempty"`
	Contact           *ReservationContact `json:"contact,omitempty"`
	TermsAccepted     *bool               `json:"termsAccepted,omitempty"`
	Pricing           *ReservationPricing `json:"pricing,omitempty"`
}

// Snapshot converts the live state into its persisted shape.
func (s ReservationState) Snapshot() ReservationSnapshot {
	people := s.PeopleCount
	terms := s.TermsAccepted
	contact := s.Contact
	pricing := s.Pricing
	return ReservationSnapshot{
		SelectedDateID:    s.SelectedDateID,
		SelectedDateLabel: s.SelectedDateLabel,
		AvailableSpots:    s.AvailableSpots,
		PeopleCount:       &people,
		RoomMode:          s.RoomMode,
		TransportMode:     s.TransportMode,
		Contact:           &contact,
		TermsAccepted:     &terms,
		Pricing:           &pricing,
	}
}
