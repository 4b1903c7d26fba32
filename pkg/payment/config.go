package payment

import (
	"fmt"
	"sort"
)

// Config holds payment-processor configuration.
// SecretKey is the only credential the backend itself needs; the publishable
// key belongs to the frontend and is carried here only for diagnostics.
type Config struct {
	SecretKey      string `env:"STRIPE_SECRET_KEY"`
	PublishableKey string `env:"STRIPE_PUBLISHABLE_KEY"`
	WebhookSecret  string `env:"STRIPE_WEBHOOK_SECRET"`
}

// Validate reports whether the backend can create payment intents.
// No request can succeed without the secret key, so startup must fail fast.
func (c Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("%w: STRIPE_SECRET_KEY is not set", ErrInvalidConfig)
	}
	return nil
}

// Presence reports which payment-related variables are set, without exposing
// their values. Used in the startup diagnostic when the secret key is missing.
func (c Config) Presence() []string {
	present := map[string]bool{
		"STRIPE_SECRET_KEY":      c.SecretKey != "",
		"STRIPE_PUBLISHABLE_KEY": c.PublishableKey != "",
		"STRIPE_WEBHOOK_SECRET":  c.WebhookSecret != "",
	}
	out := make([]string, 0, len(present))
	for name, ok := range present {
		out = append(out, fmt.Sprintf("%s=%t", name, ok))
	}
	sort.Strings(out)
	return out
}
