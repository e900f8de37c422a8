package model

import "errors"

var (
	ErrTradeNotFound = errors.New("trade not found")
	// ErrTradeNotRequested is returned by conditional status updates
	// when the trade already left the Requested state.
	ErrTradeNotRequested = errors.New("trade is not in requested state")
)
