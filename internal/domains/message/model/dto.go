package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type SendMessageRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
	Image      string `json:"image"`
}

func (req SendMessageRequest) Validate() error {
	if req.Text == "" && req.Image == "" {
		return errors.New("text or image is required")
	}

	return validation.ValidateStruct(&req,
		validation.Field(&req.SenderID, validation.Required, is.UUID),
		validation.Field(&req.ReceiverID, validation.Required, is.UUID),
	)
}
