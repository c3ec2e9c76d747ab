package paymentintentRepo

import (
	"andeanscapes/database"
	"andeanscapes/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentIntentRepository records every payment-link attempt so the
// business can follow up on unpaid deposits.
type PaymentIntentRepository interface {
	Create(ctx context.Context, record models.PaymentIntentRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.PaymentIntentRecord, error)
	GetByExperienceID(ctx context.Context, experienceID string) ([]models.PaymentIntentRecord, error)
	UpdateStatus(ctx context.Context, id, status, checkoutURL, errMsg string) error
}

type mongoPaymentIntentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentIntentRepo returns a PaymentIntentRepository backed by
// MongoDB.
func NewMongoPaymentIntentRepo() PaymentIntentRepository {
	db := database.MongoClient.Database("andeanscapes")
	return &mongoPaymentIntentRepo{
		coll: db.Collection("payment_intents"),
	}
}
