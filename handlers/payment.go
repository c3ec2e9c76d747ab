package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"andeanscapes/models"
	"andeanscapes/services/experience"
	"andeanscapes/services/payment"
	"andeanscapes/services/reservation"
	"andeanscapes/utils"
)

// PaymentHandler creates deposit checkout links for complete reservations.
type PaymentHandler struct {
	Reservations reservation.ReservationService
	Payments     payment.PaymentLinkService
	Logger       *zap.Logger
}

func NewPaymentHandler(reservations reservation.ReservationService, payments payment.PaymentLinkService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Reservations: reservations, Payments: payments, Logger: logger}
}

// CreatePaymentLinkHandler validates the reservation and returns a redirect
// URL for the deposit. Validation failures come back as a field-keyed map;
// checkout failures as a single retryable message. The reservation is left
// untouched either way.
func (h *PaymentHandler) CreatePaymentLinkHandler(c *gin.Context) {
	devID, ok := deviceID(c)
	if !ok {
		return
	}

	var input struct {
		ExperienceID string `json:"experienceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	st, err := h.Reservations.GetState(ctx, input.ExperienceID, devID)
	if err != nil {
		var notFound *experience.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "experience not found", notFound.ExperienceID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "reservation unavailable", err.Error())
		return
	}

	if errs := reservation.ValidateReservation(reservation.PayloadFromState(st)); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "errors": errs})
		return
	}

	url, err := h.Payments.CreateLink(ctx, models.PaymentLinkRequest{
		ExperienceID:  input.ExperienceID,
		DeviceID:      devID,
		DateID:        st.SelectedDateID,
		DateLabel:     st.SelectedDateLabel,
		PeopleCount:   st.PeopleCount,
		RoomMode:      st.RoomMode,
		TransportMode: st.TransportMode,
		Contact:       st.Contact,
		DepositAmount: st.Pricing.DepositAmount,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create payment link", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
