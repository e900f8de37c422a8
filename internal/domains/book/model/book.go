package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Exchange modes a book can be listed under.
const (
	ExchangeSwap   = "Swap"
	ExchangeDonate = "Donate"
	ExchangeSale   = "Sale"
)

// Defaults applied when the lister leaves descriptive metadata out.
const (
	DefaultISBN      = "N/A"
	DefaultLocation  = "Dhaka"
	DefaultCondition = "Good"
	DefaultExchange  = ExchangeSwap
	DefaultLanguage  = "English"
)

// Book is a listed title. OwnerUID is the lister's external identity id.
// Latitude/Longitude are optional; books without coordinates are simply
// excluded from location queries.
type Book struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Author      string          `json:"author" db:"author"`
	Category    string          `json:"category" db:"category"`
	ISBN        string          `json:"isbn" db:"isbn"`
	Location    string          `json:"location" db:"location"`
	Latitude    *float64        `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64        `json:"longitude,omitempty" db:"longitude"`
	Condition   string          `json:"condition" db:"condition"`
	Exchange    string          `json:"exchange" db:"exchange"`
	Language    string          `json:"language" db:"language"`
	Tags        []string        `json:"tags" db:"tags"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	ImageURL    string          `json:"image_url" db:"image_url"`
	OwnerUID    string          `json:"uid" db:"owner_uid"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasCoordinates reports whether the book can take part in location queries.
func (b *Book) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// BookInfo is the reduced shape embedded in joined responses
// (cart items, orders, reviews, trades).
type BookInfo struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url,omitempty"`
}

// NearbyBook is a location-query hit with its computed distance.
type NearbyBook struct {
	Book       *Book   `json:"book"`
	DistanceKm float64 `json:"distance_km"`
}
