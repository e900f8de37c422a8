package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CheckoutBook is the slice of a cart item's book the checkout flow
// needs: name, price, image and whether the listing is payable at all.
type CheckoutBook struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Exchange string          `json:"exchange"`
}

// CheckoutProduct is one cart entry of a checkout request.
type CheckoutProduct struct {
	Book CheckoutBook `json:"book"`
}

type CreateCheckoutSessionRequest struct {
	Products []CheckoutProduct `json:"products"`
}

func (req CreateCheckoutSessionRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Products,
			validation.Required.Error("No products provided")),
	)
}

// CheckoutSession is the hosted payment page the client redirects to.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
