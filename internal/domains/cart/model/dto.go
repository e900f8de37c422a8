package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AddCartItemRequest mirrors the client payload: user and book are
// record ids.
type AddCartItemRequest struct {
	UserID string `json:"user"`
	BookID string `json:"book"`
}

func (req AddCartItemRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required.Error("UserID is required"), is.UUID),
		validation.Field(&req.BookID, validation.Required.Error("BookID is required"), is.UUID),
	)
}
