package experience

import "andeanscapes/models"

func intPtr(n int) *int { return &n }

// emeraldMiningData is the emerald-mining adventure catalog entry. Title,
// subtitle and option labels are translation keys resolved by the web
// frontend; only technical data lives here.
var emeraldMiningData = models.ExperienceData{
	Config: models.ExperienceConfig{
		ID:                 "emeraldMining",
		Title:              "experiences.emeraldMining.title",
		Subtitle:           "experiences.emeraldMining.subtitle",
		Description:        "experiences.emeraldMining.description",
		BasePricePerPerson: 430000,
		DepositPercent:     15,
		MinPeople:          1,
		MaxPeople:          10,
		IncludesItems: []string{
			"experiences.emeraldMining.includes.guide",
			"experiences.emeraldMining.includes.equipment",
			"experiences.emeraldMining.includes.transport",
			"experiences.emeraldMining.includes.insurance",
		},
	},
	TransportOptions: []models.TransportOption{
		{
			Value:       models.TransportCarNo4x4,
			Label:       "experiences.emeraldMining.transport.carNo4x4",
			Description: "experiences.emeraldMining.transport.carNo4x4Description",
		},
		{
			Value:       models.TransportHave4x4,
			Label:       "experiences.emeraldMining.transport.have4x4",
			Description: "experiences.emeraldMining.transport.have4x4Description",
		},
		{
			Value:       models.TransportBus,
			Label:       "experiences.emeraldMining.transport.bus",
			Description: "experiences.emeraldMining.transport.busDescription",
		},
	},
	RoomModes: []models.RoomModeOption{
		{
			Value:           models.RoomModePrivate,
			Label:           "experiences.emeraldMining.roomMode.private",
			PriceMultiplier: 1,
		},
		{
			Value:           models.RoomModeCouple,
			Label:           "experiences.emeraldMining.roomMode.couple",
			PriceMultiplier: 1.2,
			FixedPeople:     intPtr(2),
		},
	},
	AvailableDates: []models.AvailableDate{
		{ID: "mar-16-2026", StartDate: "2026-03-16T00:00:00.000Z", EndDate: "2026-03-17T23:59:59.999Z", Spots: 2, IsAvailable: true},
		{ID: "apr-06-2026", StartDate: "2026-04-06T00:00:00.000Z", EndDate: "2026-04-07T23:59:59.999Z", Spots: 4, IsAvailable: true},
		{ID: "apr-20-2026", StartDate: "2026-04-20T00:00:00.000Z", EndDate: "2026-04-21T23:59:59.999Z", Spots: 3, IsAvailable: true},
		{ID: "may-04-2026", StartDate: "2026-05-04T00:00:00.000Z", EndDate: "2026-05-05T23:59:59.999Z", Spots: 0, IsAvailable: false},
	},
	WhatsappLink: "https://wa.me/573142730360?text=Hola%2C%20quiero%20reservar%20la%20Aventura%20de%20Miner%C3%ADa%20de%20Esmeraldas",
}
