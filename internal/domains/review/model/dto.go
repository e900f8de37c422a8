package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ratingBounds rejects out-of-range ratings explicitly; threshold rules
// would silently skip a zero value.
var ratingBounds = validation.By(func(value interface{}) error {
	rating, _ := value.(*int)
	if rating == nil {
		return nil
	}
	if *rating < MinRating || *rating > MaxRating {
		return fmt.Errorf("must be between %d and %d", MinRating, MaxRating)
	}
	return nil
})

type CreateReviewRequest struct {
	UserID  string `json:"user"`
	BookID  string `json:"book"`
	Rating  *int   `json:"rating"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (req CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required, is.UUID),
		validation.Field(&req.BookID, validation.Required, is.UUID),
		validation.Field(&req.Rating, validation.NotNil, ratingBounds),
		validation.Field(&req.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&req.Content, validation.Required, validation.Length(1, MaxContentLength)),
	)
}

// UpdateReviewRequest updates rating, title and content only. The
// (user, book) pair of a review never changes.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (req UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Rating, ratingBounds),
		validation.Field(&req.Title, validation.Length(1, MaxTitleLength)),
		validation.Field(&req.Content, validation.Length(1, MaxContentLength)),
	)
}

func (req UpdateReviewRequest) HasChanges() bool {
	return req.Rating != nil || req.Title != nil || req.Content != nil
}

func (req UpdateReviewRequest) Apply(review *Review) {
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Content != nil {
		review.Content = *req.Content
	}
}
