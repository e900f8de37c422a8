package stripe

import (
	"fmt"
)

// =====================================================
// STRIPE CONFIGURATION
// =====================================================

type Config struct {
	SecretKey string // API secret key (sk_...)
	APIUrl    string // API base URL (default: "https://api.stripe.com")
	Currency  string // Line item currency (default: "usd")
}

func NewConfig(secretKey, apiURL, currency string) *Config {
	cfg := &Config{
		SecretKey: secretKey,
		APIUrl:    apiURL,
		Currency:  currency,
	}
	if cfg.APIUrl == "" {
		cfg.APIUrl = "https://api.stripe.com"
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("Stripe SecretKey is required")
	}
	if c.APIUrl == "" {
		return fmt.Errorf("Stripe APIUrl is required")
	}
	return nil
}

// GetSessionsURL returns the checkout sessions endpoint.
func (c *Config) GetSessionsURL() string {
	return c.APIUrl + "/v1/checkout/sessions"
}
