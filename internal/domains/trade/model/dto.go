package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateTradeRequest mirrors the client payload: all four fields are
// record ids.
type CreateTradeRequest struct {
	SenderID       string `json:"sender"`
	SenderBookID   string `json:"senderbook"`
	ReceiverID     string `json:"receiver"`
	ReceiverBookID string `json:"receiverbook"`
}

func (req CreateTradeRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.SenderID, validation.Required, is.UUID.Error("Invalid Sender ID")),
		validation.Field(&req.SenderBookID, validation.Required, is.UUID.Error("Invalid Sender Book ID")),
		validation.Field(&req.ReceiverID, validation.Required, is.UUID.Error("Invalid Receiver ID")),
		validation.Field(&req.ReceiverBookID, validation.Required, is.UUID.Error("Invalid Receiver Book ID")),
	)
}
