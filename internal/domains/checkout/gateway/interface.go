package gateway

import (
	"context"
)

// =====================================================
// GATEWAY INTERFACE
// =====================================================

// CheckoutGateway is a hosted-checkout payment provider.
type CheckoutGateway interface {
	// CreateSession creates a hosted checkout session and returns its
	// id and redirect URL.
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}

// SessionRequest describes a checkout session to create. Amounts are
// integer cents.
type SessionRequest struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
}

// LineItem is one payable entry of a session.
type LineItem struct {
	Name       string
	ImageURL   string
	Currency   string
	UnitAmount int64 // cents
	Quantity   int
}

// Session is a created hosted checkout session.
type Session struct {
	ID  string
	URL string
}
