package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	paymentintentRepo "andeanscapes/database/repository/paymentintent"
	"andeanscapes/models"
)

// reminderDelay is how long a guest gets before the deposit follow-up
// fires.
const reminderDelay = 24 * time.Hour

// StripePaymentLinkService creates Stripe Checkout sessions for the
// reservation deposit and records every attempt.
type StripePaymentLinkService struct {
	Repo      paymentintentRepo.PaymentIntentRepository
	Reminders ReminderScheduler
	Logger    *zap.Logger

	Currency   string
	SuccessURL string
}

func NewStripePaymentLinkService(repo paymentintentRepo.PaymentIntentRepository, reminders ReminderScheduler, logger *zap.Logger, currency, successURL string) *StripePaymentLinkService {
	return &StripePaymentLinkService{
		Repo:       repo,
		Reminders:  reminders,
		Logger:     logger,
		Currency:   currency,
		SuccessURL: successURL,
	}
}

// CreateLink records the intent, asks Stripe for a checkout URL and
// schedules the deposit reminder. The returned error message is safe to
// show to the guest.
func (s *StripePaymentLinkService) CreateLink(ctx context.Context, req models.PaymentLinkRequest) (string, error) {
	if req.DepositAmount <= 0 {
		return "", errors.New("invalid deposit amount")
	}

	record := models.PaymentIntentRecord{
		ExperienceID:  req.ExperienceID,
		DeviceID:      req.DeviceID,
		DateID:        req.DateID,
		PeopleCount:   req.PeopleCount,
		RoomMode:      req.RoomMode,
		TransportMode: req.TransportMode,
		Contact:       req.Contact,
		DepositAmount: req.DepositAmount,
		Currency:      s.Currency,
		Status:        "pending",
	}
	intentID, err := s.Repo.Create(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to record payment intent: %w", err)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Deposit: %s (%s)", req.ExperienceID, req.DateLabel)),
					},
					// Stripe amounts are in minor units.
					UnitAmount: stripe.Int64(req.DepositAmount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(s.SuccessURL),
		CustomerEmail: optionalEmail(req.Contact.Email),
	}
	params.AddMetadata("intentId", intentID)
	params.AddMetadata("experienceId", req.ExperienceID)
	params.AddMetadata("dateId", req.DateID)

	sess, err := session.New(params)
	if err != nil {
		s.Logger.Error("stripe checkout session creation failed",
			zap.String("intentId", intentID),
			zap.Error(err))
		if uerr := s.Repo.UpdateStatus(ctx, intentID, "failed", "", err.Error()); uerr != nil {
			s.Logger.Warn("failed to mark payment intent failed", zap.String("intentId", intentID), zap.Error(uerr))
		}
		return "", errors.New("failed to create payment link")
	}

	if err := s.Repo.UpdateStatus(ctx, intentID, "link_created", sess.URL, ""); err != nil {
		s.Logger.Warn("failed to mark payment intent created", zap.String("intentId", intentID), zap.Error(err))
	}

	s.scheduleReminder(ctx, intentID, req)

	s.Logger.Info("payment link created",
		zap.String("intentId", intentID),
		zap.String("experienceId", req.ExperienceID),
		zap.Int64("depositAmount", req.DepositAmount))
	return sess.URL, nil
}

// scheduleReminder is best-effort; a queueing failure never blocks the
// checkout redirect.
func (s *StripePaymentLinkService) scheduleReminder(ctx context.Context, intentID string, req models.PaymentLinkRequest) {
	if s.Reminders == nil {
		return
	}
	fireAt := time.Now().Add(reminderDelay)
	payload := models.ReminderPayload{
		IntentID:     intentID,
		ExperienceID: req.ExperienceID,
		ContactName:  req.Contact.Name,
		ContactPhone: req.Contact.Phone,
		ContactEmail: req.Contact.Email,
		DateLabel:    req.DateLabel,
		FireDate:     fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleDepositReminder(ctx, payload, fireAt); err != nil {
		s.Logger.Warn("failed to schedule deposit reminder",
			zap.String("intentId", intentID),
			zap.Error(err))
	}
}

func optionalEmail(email string) *string {
	if email == "" {
		return nil
	}
	return stripe.String(email)
}
