package model

import (
	"time"

	"github.com/google/uuid"

	bookmodel "booktrade-backend/internal/domains/book/model"
	ordermodel "booktrade-backend/internal/domains/order/model"
	usermodel "booktrade-backend/internal/domains/user/model"
)

// Trade statuses. A trade starts Requested and ends Accepted or
// Rejected; there is no other transition.
const (
	StatusRequested = "Requested"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
)

// Trade is a book swap proposal between two users.
type Trade struct {
	ID             uuid.UUID `json:"id" db:"id"`
	SenderID       uuid.UUID `json:"sender" db:"sender_id"`
	SenderBookID   uuid.UUID `json:"senderbook" db:"sender_book_id"`
	ReceiverID     uuid.UUID `json:"receiver" db:"receiver_id"`
	ReceiverBookID uuid.UUID `json:"receiverbook" db:"receiver_book_id"`
	Status         string    `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TradeDetail is a trade with both parties and both books expanded.
type TradeDetail struct {
	ID           uuid.UUID          `json:"id"`
	Sender       usermodel.UserInfo `json:"sender"`
	Receiver     usermodel.UserInfo `json:"receiver"`
	SenderBook   bookmodel.BookInfo `json:"senderbook"`
	ReceiverBook bookmodel.BookInfo `json:"receiverbook"`
	Status       string             `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AcceptResult is the outcome of accepting a trade: the updated trade
// and the two orders it materialized.
type AcceptResult struct {
	Trade  *Trade              `json:"trade"`
	Orders []*ordermodel.Order `json:"orders"`
}
