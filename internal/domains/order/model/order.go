package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	usermodel "booktrade-backend/internal/domains/user/model"
)

// Order sources. Checkout orders come from the cart flow, trade orders
// are materialized by an accepted trade.
const (
	SourceCheckout = "checkout"
	SourceTrade    = "trade"
)

// Order records that a user obtained a book. Orders are append-only;
// there is no update or delete path.
type Order struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	BookID    uuid.UUID `json:"book_id" db:"book_id"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OrderBook is the book shape embedded in order listings. Orders carry
// a few more book fields than other joins.
type OrderBook struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url,omitempty"`
	ISBN     string          `json:"isbn"`
	Exchange string          `json:"exchange"`
}

// OrderDetail is an order joined with its user and book.
type OrderDetail struct {
	ID        uuid.UUID          `json:"id"`
	User      usermodel.UserInfo `json:"user"`
	Book      OrderBook          `json:"book"`
	Source    string             `json:"source"`
	CreatedAt time.Time          `json:"created_at"`
}
