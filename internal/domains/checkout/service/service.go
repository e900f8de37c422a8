package service

import (
	"context"

	"github.com/shopspring/decimal"

	bookmodel "booktrade-backend/internal/domains/book/model"
	"booktrade-backend/internal/domains/checkout/gateway"
	"booktrade-backend/internal/domains/checkout/model"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// CHECKOUT SERVICE IMPLEMENTATION
// =====================================================

var cents = decimal.NewFromInt(100)

type checkoutService struct {
	gateway    gateway.CheckoutGateway
	currency   string
	successURL string
	cancelURL  string
}

func NewCheckoutService(gw gateway.CheckoutGateway, currency, successURL, cancelURL string) CheckoutService {
	return &checkoutService{
		gateway:    gw,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (s *checkoutService) CreateCheckoutSession(ctx context.Context, req *model.CreateCheckoutSessionRequest) (*model.CheckoutSession, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation("No products provided")
	}

	lineItems := BuildLineItems(req.Products, s.currency)
	if len(lineItems) == 0 {
		return nil, apperrors.BusinessRule("Cart contains only donated items. Nothing to pay for.")
	}

	if s.gateway == nil {
		return nil, apperrors.Internal("checkout gateway not configured", nil)
	}

	session, err := s.gateway.CreateSession(ctx, gateway.SessionRequest{
		LineItems:  lineItems,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to create checkout session", err)
	}

	return &model.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// BuildLineItems turns cart products into payable line items. Donated
// books carry no price and are filtered out; amounts are integer cents.
func BuildLineItems(products []model.CheckoutProduct, currency string) []gateway.LineItem {
	items := []gateway.LineItem{}
	for _, product := range products {
		if product.Book.Exchange == bookmodel.ExchangeDonate {
			continue
		}

		items = append(items, gateway.LineItem{
			Name:       product.Book.Title,
			ImageURL:   product.Book.ImageURL,
			Currency:   currency,
			UnitAmount: product.Book.Price.Mul(cents).IntPart(),
			Quantity:   1,
		})
	}
	return items
}
