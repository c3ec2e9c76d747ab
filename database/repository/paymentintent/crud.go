package paymentintentRepo

import (
	"andeanscapes/models"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new payment intent record and returns its ID.
func (r *mongoPaymentIntentRepo) Create(ctx context.Context, record models.PaymentIntentRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns a payment intent record by its ID.
func (r *mongoPaymentIntentRepo) GetByID(ctx context.Context, id string) (*models.PaymentIntentRecord, error) {
	var record models.PaymentIntentRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByExperienceID fetches all records for a specific experience.
func (r *mongoPaymentIntentRepo) GetByExperienceID(ctx context.Context, experienceID string) ([]models.PaymentIntentRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"experience_id": experienceID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PaymentIntentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateStatus moves a record to its terminal status after the checkout
// call finishes.
func (r *mongoPaymentIntentRepo) UpdateStatus(ctx context.Context, id, status, checkoutURL, errMsg string) error {
	update := bson.M{"$set": bson.M{
		"status":       status,
		"checkout_url": checkoutURL,
		"error":        errMsg,
		"updated_at":   time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("payment intent not found")
	}
	return nil
}
