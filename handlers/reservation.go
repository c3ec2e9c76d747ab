package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"andeanscapes/models"
	"andeanscapes/services/experience"
	"andeanscapes/services/reservation"
	"andeanscapes/utils"
)

// DeviceIDHeader identifies the guest's browser session. Reservations are
// keyed per experience and device; two tabs sharing a device id overwrite
// each other, last save wins.
const DeviceIDHeader = "X-Device-ID"

// ReservationHandler exposes the reservation engine over HTTP.
type ReservationHandler struct {
	Service reservation.ReservationService
	Logger  *zap.Logger
}

func NewReservationHandler(service reservation.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: service, Logger: logger}
}

// reservationUpdateInput is one transition per request. Action selects
// which payload field applies.
type reservationUpdateInput struct {
	Action string `json:"action" binding:"required"`

	Date *struct {
		ID    string `json:"id" binding:"required"`
		Label string `json:"label"`
		Spots int    `json:"spots"`
	} `json:"date,omitempty"`
	PeopleCount *int                  `json:"peopleCount,omitempty"`
	RoomMode    *models.RoomMode      `json:"roomMode,omitempty"`
	Transport   *models.TransportMode `json:"transportMode,omitempty"`
	Contact     *struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	} `json:"contact,omitempty"`
	TermsAccepted *bool `json:"termsAccepted,omitempty"`
}

func deviceID(c *gin.Context) (string, bool) {
	id := c.GetHeader(DeviceIDHeader)
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing device id", DeviceIDHeader+" header is required")
		return "", false
	}
	return id, true
}

func (h *ReservationHandler) respondState(c *gin.Context, st models.ReservationState, err error) {
	if err != nil {
		var notFound *experience.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "experience not found", notFound.ExperienceID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "reservation unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":      st,
		"isComplete": reservation.StateComplete(st),
	})
}

// GetStateHandler returns the current reservation state, hydrating it from
// the durable store on first access.
func (h *ReservationHandler) GetStateHandler(c *gin.Context) {
	devID, ok := deviceID(c)
	if !ok {
		return
	}
	st, err := h.Service.GetState(c.Request.Context(), c.Param("id"), devID)
	h.respondState(c, st, err)
}

// UpdateHandler applies a single named transition to the reservation.
func (h *ReservationHandler) UpdateHandler(c *gin.Context) {
	devID, ok := deviceID(c)
	if !ok {
		return
	}
	experienceID := c.Param("id")

	var input reservationUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	var (
		st  models.ReservationState
		err error
	)
	switch input.Action {
	case "setDate":
		if input.Date == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "date payload is required for setDate")
			return
		}
		st, err = h.Service.SetDate(ctx, experienceID, devID, input.Date.ID, input.Date.Label, input.Date.Spots)
	case "setPeopleCount":
		if input.PeopleCount == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "peopleCount is required for setPeopleCount")
			return
		}
		st, err = h.Service.SetPeopleCount(ctx, experienceID, devID, *input.PeopleCount)
	case "setRoomMode":
		if input.RoomMode == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "roomMode is required for setRoomMode")
			return
		}
		st, err = h.Service.SetRoomMode(ctx, experienceID, devID, *input.RoomMode)
	case "setTransport":
		if input.Transport == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "transportMode is required for setTransport")
			return
		}
		st, err = h.Service.SetTransportMode(ctx, experienceID, devID, *input.Transport)
	case "setContact":
		if input.Contact == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "contact payload is required for setContact")
			return
		}
		st, err = h.Service.SetContactField(ctx, experienceID, devID, input.Contact.Field, input.Contact.Value)
	case "setTerms":
		if input.TermsAccepted == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "termsAccepted is required for setTerms")
			return
		}
		st, err = h.Service.SetTermsAccepted(ctx, experienceID, devID, *input.TermsAccepted)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown action: "+input.Action)
		return
	}

	h.respondState(c, st, err)
}

// ValidateHandler runs the submission-time schema over the current state
// and returns the field-keyed error map, or valid: true.
func (h *ReservationHandler) ValidateHandler(c *gin.Context) {
	devID, ok := deviceID(c)
	if !ok {
		return
	}
	st, err := h.Service.GetState(c.Request.Context(), c.Param("id"), devID)
	if err != nil {
		h.respondState(c, st, err)
		return
	}

	if errs := reservation.ValidateReservation(reservation.PayloadFromState(st)); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "errors": errs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// ResetHandler discards the reservation and clears the persisted snapshot.
func (h *ReservationHandler) ResetHandler(c *gin.Context) {
	devID, ok := deviceID(c)
	if !ok {
		return
	}
	st, err := h.Service.Reset(c.Request.Context(), c.Param("id"), devID)
	h.respondState(c, st, err)
}
