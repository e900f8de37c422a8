package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables at startup.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Trade    TradeConfig
	Checkout CheckoutConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string

	// BootPolicy controls what happens when the store is unreachable at startup:
	// "fatal" aborts the process, "degraded" starts the server with data routes
	// answering 503 until the store comes back.
	BootPolicy string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// TradeConfig holds trade lifecycle policy knobs.
type TradeConfig struct {
	// StrictTransitions restricts Accept/Reject to trades still in Requested
	// state. The legacy behavior allowed re-accepting a resolved trade, which
	// re-materializes duplicate orders; keep this true unless reproducing that
	// behavior on purpose.
	StrictTransitions bool
}

// CheckoutConfig holds the hosted-checkout provider credentials.
type CheckoutConfig struct {
	SecretKey  string // provider API secret
	APIURL     string // provider API base URL
	Currency   string // ISO currency code for line items
	SuccessURL string // frontend redirect after payment
	CancelURL  string // frontend redirect on abort
}

// Boot policies for AppConfig.BootPolicy.
const (
	BootPolicyFatal    = "fatal"
	BootPolicyDegraded = "degraded"
)

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Booktrade API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			BootPolicy:  getEnv("DB_BOOT_POLICY", BootPolicyFatal),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "booktrade"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Trade: TradeConfig{
			StrictTransitions: getEnvBool("TRADE_STRICT_TRANSITIONS", true),
		},
		Checkout: CheckoutConfig{
			SecretKey:  getEnv("CHECKOUT_SECRET_KEY", ""),
			APIURL:     getEnv("CHECKOUT_API_URL", "https://api.stripe.com"),
			Currency:   getEnv("CHECKOUT_CURRENCY", "usd"),
			SuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/dashboard/payment-failure"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the loaded config is usable.
func (c *Config) Validate() error {
	if c.App.BootPolicy != BootPolicyFatal && c.App.BootPolicy != BootPolicyDegraded {
		return fmt.Errorf("DB_BOOT_POLICY must be %q or %q, got %q",
			BootPolicyFatal, BootPolicyDegraded, c.App.BootPolicy)
	}

	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Checkout.SecretKey == "" {
			fmt.Println("WARNING: CHECKOUT_SECRET_KEY not set - checkout sessions will not work")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
