package reservation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"andeanscapes/models"
)

func TestCalculatePricingDefaultsMultiplierToOne(t *testing.T) {
	// No table entry for the mode: multiplier 1, people as given.
	p := CalculatePricing(430000, 3, 15, nil, models.RoomModePrivate)
	require.Equal(t, float64(1290000), p.Total)
	require.Equal(t, int64(193500), p.DepositAmount)
}

func TestCalculatePricingZeroMultiplierFallsBack(t *testing.T) {
	// A misconfigured zero multiplier behaves like 1, not like a free tour.
	modes := []models.RoomModeOption{{Value: models.RoomModePrivate, PriceMultiplier: 0}}
	p := CalculatePricing(430000, 2, 15, modes, models.RoomModePrivate)
	require.Equal(t, float64(860000), p.Total)
}

func TestCalculatePricingDepositRounding(t *testing.T) {
	// 100 * 1 * 1 = 100; 12.5% of 100 = 12.5 rounds away from zero.
	modes := []models.RoomModeOption{{Value: models.RoomModePrivate, PriceMultiplier: 1}}
	p := CalculatePricing(100, 1, 12.5, modes, models.RoomModePrivate)
	require.Equal(t, int64(13), p.DepositAmount)
}

func TestCalculatePricingFixedOccupancy(t *testing.T) {
	two := 2
	modes := []models.RoomModeOption{
		{Value: models.RoomModePrivate, PriceMultiplier: 1},
		{Value: models.RoomModeCouple, PriceMultiplier: 1.2, FixedPeople: &two},
	}
	for _, people := range []int{1, 5, 10} {
		p := CalculatePricing(430000, people, 15, modes, models.RoomModeCouple)
		require.Equal(t, float64(1032000), p.Total, "peopleCount=%d", people)
		require.Equal(t, int64(154800), p.DepositAmount, "peopleCount=%d", people)
	}
}
