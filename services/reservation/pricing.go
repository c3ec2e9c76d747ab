package reservation

import (
	"math"

	"andeanscapes/models"
)

// CalculatePricing derives the reservation pricing from the experience
// configuration and the current people/room selection. A room mode with a
// fixed occupancy prices on that occupancy regardless of peopleCount.
func CalculatePricing(basePricePerPerson float64, peopleCount int, depositPercent float64, roomModes []models.RoomModeOption, roomMode models.RoomMode) models.ReservationPricing {
	multiplier := 1.0
	effectivePeople := peopleCount
	for _, rm := range roomModes {
		if rm.Value != roomMode {
			continue
		}
		if rm.PriceMultiplier != 0 {
			multiplier = rm.PriceMultiplier
		}
		if rm.FixedPeople != nil {
			effectivePeople = *rm.FixedPeople
		}
		break
	}

	total := basePricePerPerson * float64(effectivePeople) * multiplier
	deposit := int64(math.Round(total * depositPercent / 100))

	return models.ReservationPricing{
		BasePricePerPerson: basePricePerPerson,
		Total:              total,
		DepositPercent:     depositPercent,
		DepositAmount:      deposit,
	}
}
