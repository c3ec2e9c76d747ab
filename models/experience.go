package models

// ExperienceConfig holds the technical configuration of a bookable
// experience. Display copy lives in the translation layer and is referenced
// here only by key.
type ExperienceConfig struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Subtitle           string   `json:"subtitle"`
	Description        string   `json:"description"`
	BasePricePerPerson float64  `json:"basePricePerPerson"`
	DepositPercent     float64  `json:"depositPercent"`
	MinPeople          int      `json:"minPeople"`
	MaxPeople          int      `json:"maxPeople"`
	IncludesItems      []string `json:"includesItems"`
}

// TransportOption is one of the fixed transport choices offered for an
// experience.
type TransportOption struct {
	Value       TransportMode `json:"value"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
}

// RoomModeOption describes a pricing/occupancy variant. When FixedPeople is
// non-nil the total is priced on that occupancy regardless of the selected
// party size.
type RoomModeOption struct {
	Value           RoomMode `json:"value"`
	Label           string   `json:"label"`
	PriceMultiplier float64  `json:"priceMultiplier"`
	FixedPeople     *int     `json:"fixedPeople,omitempty"`
}

// AvailableDate is a bookable date-range slot with its remaining capacity.
type AvailableDate struct {
	ID          string `json:"id"`
	StartDate   string `json:"startDate"` // ISO 8601 UTC
	EndDate     string `json:"endDate"`   // ISO 8601 UTC
	Spots       int    `json:"spots"`
	IsAvailable bool   `json:"isAvailable"`
}

// ExperienceData is the consolidated experience payload served to clients.
type ExperienceData struct {
	Config           ExperienceConfig  `json:"config"`
	TransportOptions []TransportOption `json:"transportOptions"`
	RoomModes        []RoomModeOption  `json:"roomModes"`
	AvailableDates   []AvailableDate   `json:"availableDates"`
	WhatsappLink     string            `json:"whatsappLink"`
}

// RoomModeOf returns the room-mode option matching mode, or nil when the
// configuration does not declare it.
func (d ExperienceData) RoomModeOf(mode RoomMode) *RoomModeOption {
	for i := range d.RoomModes {
		if d.RoomModes[i].Value == mode {
			return &d.RoomModes[i]
		}
	}
	return nil
}
