package reservation

import (
	"sync"

	"andeanscapes/models"
)

const (
	defaultPeopleCount = 2
	hardMinPeople      = 1
	hardMaxPeople      = 10
)

// Engine owns the in-memory state of a single pending reservation for one
// experience. All mutation goes through the named transitions below; each
// transition completes atomically and leaves pricing consistent with the
// people/room selection. The engine never returns errors for out-of-range
// input: it clamps or accepts verbatim, and structural validation is the
// caller's concern at submission time.
type Engine struct {
	mu sync.Mutex

	basePricePerPerson float64
	depositPercent     float64
	minPeople          int
	maxPeople          int
	roomModes          []models.RoomModeOption

	state models.ReservationState
}

// NewEngine builds an engine with configuration-derived defaults. The state
// starts un-hydrated; Hydrate must be called once after the initial load
// attempt, whether or not persisted data existed.
func NewEngine(cfg models.ExperienceConfig, roomModes []models.RoomModeOption) *Engine {
	e := &Engine{
		basePricePerPerson: cfg.BasePricePerPerson,
		depositPercent:     cfg.DepositPercent,
		minPeople:          cfg.MinPeople,
		maxPeople:          cfg.MaxPeople,
		roomModes:          roomModes,
	}
	e.state = e.initialState()
	return e
}

func (e *Engine) initialState() models.ReservationState {
	return models.ReservationState{
		PeopleCount: e.clampPeople(defaultPeopleCount),
		RoomMode:    models.RoomModePrivate,
		Pricing:     e.pricingFor(e.clampPeople(defaultPeopleCount), models.RoomModePrivate),
	}
}

// clampPeople bounds n to [1,10] intersected with the configured
// min/max. The [1,10] ceiling holds regardless of configuration.
func (e *Engine) clampPeople(n int) int {
	lo, hi := hardMinPeople, hardMaxPeople
	if e.minPeople > lo {
		lo = e.minPeople
	}
	if e.maxPeople > 0 && e.maxPeople < hi {
		hi = e.maxPeople
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func (e *Engine) pricingFor(peopleCount int, mode models.RoomMode) models.ReservationPricing {
	return CalculatePricing(e.basePricePerPerson, peopleCount, e.depositPercent, e.roomModes, mode)
}

// SetDate records the chosen date slot. The id is taken on trust; offering
// only valid ids is the caller's responsibility. Pricing is unaffected.
func (e *Engine) SetDate(id, label string, spots int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.SelectedDateID = id
	e.state.SelectedDateLabel = label
	s := spots
	e.state.AvailableSpots = &s
}

// SetPeopleCount clamps n to the allowed range, stores it and recomputes
// pricing.
func (e *Engine) SetPeopleCount(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.PeopleCount = e.clampPeople(n)
	e.state.Pricing = e.pricingFor(e.state.PeopleCount, e.state.RoomMode)
}

// SetRoomMode stores the mode and recomputes pricing. A mode with a fixed
// occupancy prices on that occupancy; the stored people count is left as-is.
func (e *Engine) SetRoomMode(mode models.RoomMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.RoomMode = mode
	e.state.Pricing = e.pricingFor(e.state.PeopleCount, mode)
}

// SetTransportMode stores the mode verbatim.
func (e *Engine) SetTransportMode(mode models.TransportMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.TransportMode = mode
}

// SetContactField stores one contact field. Unknown field names are ignored.
func (e *Engine) SetContactField(field, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch field {
	case "name":
		e.state.Contact.Name = value
	case "phone":
		e.state.Contact.Phone = value
	case "email":
		e.state.Contact.Email = value
	}
}

// SetTermsAccepted stores the acceptance flag.
func (e *Engine) SetTermsAccepted(accepted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.TermsAccepted = accepted
}

// Hydrate merges a partial persisted snapshot into the current state, marks
// the engine hydrated and recomputes pricing from the merged people/room
// values. Persisted pricing is never trusted. A nil snapshot still completes
// hydration with configuration-derived defaults.
func (e *Engine) Hydrate(snap *models.ReservationSnapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if snap != nil {
		if snap.SelectedDateID != "" {
			e.state.SelectedDateID = snap.SelectedDateID
		}
		if snap.SelectedDateLabel != "" {
			e.state.SelectedDateLabel = snap.SelectedDateLabel
		}
		if snap.AvailableSpots != nil {
			s := *snap.AvailableSpots
			e.state.AvailableSpots = &s
		}
		if snap.PeopleCount != nil {
			e.state.PeopleCount = e.clampPeople(*snap.PeopleCount)
		}
		if snap.RoomMode != "" {
			e.state.RoomMode = snap.RoomMode
		}
		if snap.TransportMode != "" {
			e.state.TransportMode = snap.TransportMode
		}
		if snap.Contact != nil {
			e.state.Contact = *snap.Contact
		}
		if snap.TermsAccepted != nil {
			e.state.TermsAccepted = *snap.TermsAccepted
		}
	}
	e.state.IsHydrated = true
	e.state.Pricing = e.pricingFor(e.state.PeopleCount, e.state.RoomMode)
}

// Reset discards all fields and returns to the default state for the
// configuration in force. The hydration flag survives: the one load attempt
// of this engine's lifetime has already happened.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	hydrated := e.state.IsHydrated
	e.state = e.initialState()
	e.state.IsHydrated = hydrated
}

// State returns a copy of the current reservation state.
func (e *Engine) State() models.ReservationState {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	if e.state.AvailableSpots != nil {
		s := *e.state.AvailableSpots
		st.AvailableSpots = &s
	}
	return st
}

// IsHydrated reports whether the initial load attempt has completed.
func (e *Engine) IsHydrated() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.IsHydrated
}

// IsComplete reports whether the reservation has everything needed to
// submit: a date, at least one person, a transport mode, a plausible name
// and phone, and accepted terms. Email is never required here.
func (e *Engine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return StateComplete(e.state)
}

// StateComplete is the completeness predicate over a state copy.
func StateComplete(st models.ReservationState) bool {
	return st.SelectedDateID != "" &&
		st.PeopleCount >= 1 &&
		st.TransportMode != "" &&
		len(st.Contact.Name) >= 2 &&
		len(st.Contact.Phone) >= 7 &&
		st.TermsAccepted
}
