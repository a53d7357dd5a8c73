package models

import "time"

// PartnerSubmittedPayload is the asynq task payload queued when a
// registration wizard completes.
type PartnerSubmittedPayload struct {
	PartnerID    string      `json:"partnerId"`
	PartnerType  PartnerType `json:"partnerType"`
	BusinessName string      `json:"businessName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	District     string      `json:"district"`
}

// Notification is a stored acknowledgement produced by the background worker.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	PartnerID string    `bson:"partnerId" json:"partnerId"`
	Channel   string    `bson:"channel" json:"channel"` // e.g. "whatsapp", "email"
	Message   string    `bson:"message" json:"message"`
	Sent      bool      `bson:"sent" json:"sent"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
