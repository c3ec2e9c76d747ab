package reservation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"andeanscapes/models"
)

func testConfig() (models.ExperienceConfig, []models.RoomModeOption) {
	two := 2
	cfg := models.ExperienceConfig{
		ID:                 "emeraldMining",
		BasePricePerPerson: 430000,
		DepositPercent:     15,
		MinPeople:          1,
		MaxPeople:          10,
	}
	roomModes := []models.RoomModeOption{
		{Value: models.RoomModePrivate, PriceMultiplier: 1},
		{Value: models.RoomModeCouple, PriceMultiplier: 1.2, FixedPeople: &two},
	}
	return cfg, roomModes
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg, roomModes := testConfig()
	return NewEngine(cfg, roomModes)
}

func TestEngineDefaults(t *testing.T) {
	e := newTestEngine(t)
	st := e.State()

	require.Empty(t, st.SelectedDateID)
	require.Equal(t, 2, st.PeopleCount)
	require.Equal(t, models.RoomModePrivate, st.RoomMode)
	require.Empty(t, st.TransportMode)
	require.False(t, st.TermsAccepted)
	require.False(t, st.IsHydrated)
	require.Equal(t, float64(860000), st.Pricing.Total)
	require.Equal(t, int64(129000), st.Pricing.DepositAmount)
}

func TestSetPeopleCountClamps(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{7, 7},
		{10, 10},
		{11, 10},
		{100, 10},
	}
	for _, tc := range cases {
		e.SetPeopleCount(tc.in)
		require.Equal(t, tc.want, e.State().PeopleCount, "setPeopleCount(%d)", tc.in)
	}
}

func TestClampRespectsConfiguredBounds(t *testing.T) {
	cfg, roomModes := testConfig()
	cfg.MinPeople = 2
	cfg.MaxPeople = 6
	e := NewEngine(cfg, roomModes)

	e.SetPeopleCount(1)
	require.Equal(t, 2, e.State().PeopleCount)

	e.SetPeopleCount(9)
	require.Equal(t, 6, e.State().PeopleCount)
}

func TestPricingDeterminism(t *testing.T) {
	e := newTestEngine(t)

	e.SetPeopleCount(2)
	st := e.State()
	require.Equal(t, float64(860000), st.Pricing.Total)
	require.Equal(t, int64(129000), st.Pricing.DepositAmount)
	require.Equal(t, float64(430000), st.Pricing.BasePricePerPerson)
	require.Equal(t, float64(15), st.Pricing.DepositPercent)

	// Couple mode prices on its fixed occupancy with the 1.2 multiplier.
	e.SetRoomMode(models.RoomModeCouple)
	st = e.State()
	require.Equal(t, float64(1032000), st.Pricing.Total)
	require.Equal(t, int64(154800), st.Pricing.DepositAmount)
}

func TestCoupleModeOverridesPeopleCountForPricingOnly(t *testing.T) {
	e := newTestEngine(t)

	e.SetRoomMode(models.RoomModeCouple)
	e.SetPeopleCount(5)

	st := e.State()
	require.Equal(t, 5, st.PeopleCount)
	require.Equal(t, float64(1032000), st.Pricing.Total)
	require.Equal(t, int64(154800), st.Pricing.DepositAmount)

	// Back to private: the stored count drives pricing again.
	e.SetRoomMode(models.RoomModePrivate)
	st = e.State()
	require.Equal(t, float64(5*430000), st.Pricing.Total)
}

func TestDateAndTransportDoNotAffectPricing(t *testing.T) {
	e := newTestEngine(t)
	before := e.State().Pricing

	e.SetDate("mar-16-2026", "16–17 de marzo, 2026", 2)
	e.SetTransportMode(models.TransportBus)
	e.SetContactField("name", "Ana")
	e.SetTermsAccepted(true)

	require.Equal(t, before, e.State().Pricing)

	st := e.State()
	require.Equal(t, "mar-16-2026", st.SelectedDateID)
	require.NotNil(t, st.AvailableSpots)
	require.Equal(t, 2, *st.AvailableSpots)
	require.Equal(t, models.TransportBus, st.TransportMode)
	require.Equal(t, "Ana", st.Contact.Name)
	require.True(t, st.TermsAccepted)
}

func TestSetContactFieldIgnoresUnknownField(t *testing.T) {
	e := newTestEngine(t)
	e.SetContactField("address", "somewhere")
	require.Equal(t, models.ReservationContact{}, e.State().Contact)
}

func TestHydrationHappensOnce(t *testing.T) {
	e := newTestEngine(t)
	require.False(t, e.IsHydrated())

	e.Hydrate(nil)
	require.True(t, e.IsHydrated())

	// Defaults survive an empty hydration.
	st := e.State()
	require.Equal(t, 2, st.PeopleCount)
	require.Equal(t, int64(129000), st.Pricing.DepositAmount)
}

func TestHydrateRecomputesPricingAndClamps(t *testing.T) {
	e := newTestEngine(t)

	people := 50
	terms := true
	e.Hydrate(&models.ReservationSnapshot{
		SelectedDateID: "apr-06-2026",
		PeopleCount:    &people,
		RoomMode:       models.RoomModeCouple,
		TransportMode:  models.TransportHave4x4,
		Contact:        &models.ReservationContact{Name: "Luisa", Phone: "+57 314 273 0360"},
		TermsAccepted:  &terms,
		// A tampered persisted pricing must be ignored.
		Pricing: &models.ReservationPricing{Total: 1, DepositAmount: 1},
	})

	st := e.State()
	require.True(t, st.IsHydrated)
	require.Equal(t, 10, st.PeopleCount)
	require.Equal(t, float64(1032000), st.Pricing.Total)
	require.Equal(t, int64(154800), st.Pricing.DepositAmount)
	require.Equal(t, "apr-06-2026", st.SelectedDateID)
	require.Equal(t, models.TransportHave4x4, st.TransportMode)
	require.True(t, st.TermsAccepted)
}

func TestResetIsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	e.Hydrate(nil)

	e.SetDate("mar-16-2026", "label", 2)
	e.SetPeopleCount(8)
	e.SetRoomMode(models.RoomModeCouple)
	e.SetTransportMode(models.TransportBus)
	e.SetContactField("name", "Ana María")
	e.SetTermsAccepted(true)

	e.Reset()
	first := e.State()
	e.Reset()
	second := e.State()

	require.Equal(t, first, second)
	require.Empty(t, first.SelectedDateID)
	require.Equal(t, 2, first.PeopleCount)
	require.Equal(t, models.RoomModePrivate, first.RoomMode)
	require.True(t, first.IsHydrated, "reset must not re-gate persistence")
}

func TestCompletenessBoundary(t *testing.T) {
	e := newTestEngine(t)
	e.SetDate("mar-16-2026", "label", 2)
	e.SetTransportMode(models.TransportCarNo4x4)
	e.SetContactField("name", "An")
	e.SetTermsAccepted(true)

	// Six-character phone is one short.
	e.SetContactField("phone", "123456")
	require.False(t, e.IsComplete())

	e.SetContactField("phone", "1234567")
	require.True(t, e.IsComplete())

	// Email never matters for completeness.
	e.SetContactField("email", "not-an-email")
	require.True(t, e.IsComplete())

	e.SetTermsAccepted(false)
	require.False(t, e.IsComplete())
}
