package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// CREATE BOOK REQUEST
// =====================================================

type CreateBookRequest struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	ISBN        string   `json:"isbn"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Condition   string   `json:"condition"`
	Exchange    string   `json:"exchange"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	OwnerUID    string   `json:"uid"`
}

func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Author, validation.Required),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Exchange, validation.In("", ExchangeSwap, ExchangeDonate, ExchangeSale)),
		validation.Field(&req.Price, validation.NotNil, validation.Min(0.0)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.ImageURL, validation.Required),
		validation.Field(&req.OwnerUID, validation.Required),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}

// ToBook builds the entity, filling descriptive defaults.
func (req CreateBookRequest) ToBook() *Book {
	book := &Book{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		ISBN:        req.ISBN,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Condition:   req.Condition,
		Exchange:    req.Exchange,
		Language:    req.Language,
		Tags:        req.Tags,
		Price:       decimal.NewFromFloat(*req.Price),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OwnerUID:    req.OwnerUID,
	}

	if book.ISBN == "" {
		book.ISBN = DefaultISBN
	}
	if book.Location == "" {
		book.Location = DefaultLocation
	}
	if book.Condition == "" {
		book.Condition = DefaultCondition
	}
	if book.Exchange == "" {
		book.Exchange = DefaultExchange
	}
	if book.Language == "" {
		book.Language = DefaultLanguage
	}
	if book.Tags == nil {
		book.Tags = []string{}
	}

	return book
}

// =====================================================
// UPDATE BOOK REQUEST
// =====================================================

type UpdateBookRequest struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Category    *string  `json:"category"`
	ISBN        *string  `json:"isbn"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Condition   *string  `json:"condition"`
	Exchange    *string  `json:"exchange"`
	Language    *string  `json:"language"`
	Tags        []string `json:"tags"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

func (req UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Exchange, validation.In(ExchangeSwap, ExchangeDonate, ExchangeSale)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}

// HasChanges reports whether at least one field is set.
func (req UpdateBookRequest) HasChanges() bool {
	return req.Title != nil || req.Author != nil || req.Category != nil ||
		req.ISBN != nil || req.Location != nil || req.Latitude != nil ||
		req.Longitude != nil || req.Condition != nil || req.Exchange != nil ||
		req.Language != nil || req.Tags != nil || req.Price != nil ||
		req.Description != nil || req.ImageURL != nil
}

// Apply copies the set fields onto the entity.
func (req UpdateBookRequest) Apply(book *Book) {
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Category != nil {
		book.Category = *req.Category
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.Location != nil {
		book.Location = *req.Location
	}
	if req.Latitude != nil {
		book.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		book.Longitude = req.Longitude
	}
	if req.Condition != nil {
		book.Condition = *req.Condition
	}
	if req.Exchange != nil {
		book.Exchange = *req.Exchange
	}
	if req.Language != nil {
		book.Language = *req.Language
	}
	if req.Tags != nil {
		book.Tags = req.Tags
	}
	if req.Price != nil {
		book.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.ImageURL != nil {
		book.ImageURL = *req.ImageURL
	}
}

// =====================================================
// LOCATION QUERY
// =====================================================

type LocationQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

func (q LocationQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&q.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&q.RadiusKm, validation.Min(0.0)),
	)
}
