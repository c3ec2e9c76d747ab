package models

import "time"

// PaymentLinkRequest carries the full reservation snapshot needed to create
// a deposit checkout link.
type PaymentLinkRequest struct {
	ExperienceID  string             `json:"experienceId"`
	DeviceID      string             `json:"deviceId"`
	DateID        string             `json:"dateId"`
	DateLabel     string             `json:"dateLabel"`
	PeopleCount   int                `json:"peopleCount"`
	RoomMode      RoomMode           `json:"roomMode"`
	TransportMode TransportMode      `json:"transportMode"`
	Contact       ReservationContact `json:"contact"`
	DepositAmount int64              `json:"depositAmount"`
	Currency      string             `json:"currency"`
}

// PaymentIntentRecord is the durable trace of a payment-link attempt.
type PaymentIntentRecord struct {
	ID            string             `bson:"id" json:"id"`
	ExperienceID  string             `bson:"experience_id" json:"experience_id"`
	DeviceID      string             `bson:"device_id" json:"device_id"`
	DateID        string             `bson:"date_id" json:"date_id"`
	PeopleCount   int                `bson:"people_count" json:"people_count"`
	RoomMode      RoomMode           `bson:"room_mode" json:"room_mode"`
	TransportMode TransportMode      `bson:"transport_mode" json:"transport_mode"`
	Contact       ReservationContact `bson:"contact" json:"contact"`
	DepositAmount int64              `bson:"deposit_amount" json:"deposit_amount"`
	Currency      string             `bson:"currency" json:"currency"`
	CheckoutURL   string             `bson:"checkout_url" json:"checkout_url"`
	Status        string             `bson:"status" json:"status"` // "pending", "link_created", "failed"
	Error         string             `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ReminderPayload is the asynq task body for a deposit reminder.
type ReminderPayload struct {
	IntentID     string `json:"intentId"`
	ExperienceID string `json:"experienceId"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail,omitempty"`
	DateLabel    string `json:"dateLabel"`
	FireDate     string `json:"fireDate"`
}
