package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CartItemRef is one entry of a batch order request. ID is the source
// cart item to remove once the order is created.
type CartItemRef struct {
	ID     string `json:"id"`
	UserID string `json:"user"`
	BookID string `json:"book"`
}

type CreateOrdersRequest struct {
	CartItems []CartItemRef `json:"cartitems"`
}

func (req CreateOrdersRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.CartItems,
			validation.Required.Error("Cart items are required and must be a non-empty array")),
	)
}

// SkippedItem is a batch entry that could not become an order, echoed
// back with the reason so the caller knows what was dropped.
type SkippedItem struct {
	Item   CartItemRef `json:"item"`
	Reason string      `json:"reason"`
}

// BatchResult is the partial-success outcome of a batch order request:
// malformed entries are skipped, not fatal.
type BatchResult struct {
	Created []*Order      `json:"created"`
	Skipped []SkippedItem `json:"skipped"`
}
