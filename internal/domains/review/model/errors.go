package model

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("book already reviewed by user")
)
