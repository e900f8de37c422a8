package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat message between two users. Either text or an
// image url is present; messages are append-only.
type Message struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id" db:"receiver_id"`
	Text       string    `json:"text,omitempty" db:"text"`
	ImageURL   string    `json:"image_url,omitempty" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
