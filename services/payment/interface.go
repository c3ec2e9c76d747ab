package payment

import (
	"context"
	"time"

	"andeanscapes/models"
)

// PaymentLinkService turns a validated reservation into an external
// checkout URL for the deposit. Failures surface as a single error; the
// reservation itself is never touched, so the guest can retry.
type PaymentLinkService interface {
	CreateLink(ctx context.Context, req models.PaymentLinkRequest) (string, error)
}

// ReminderScheduler enqueues a deposit follow-up for a payment intent.
type ReminderScheduler interface {
	ScheduleDepositReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}
