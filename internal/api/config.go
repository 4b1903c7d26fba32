package api

import "time"

// Config holds route-layer settings.
type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	BrandName       string        `env:"BRAND_NAME" envDefault:"Pixelcraft Studio"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"./public"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_CALL_TIMEOUT" envDefault:"30s"` // Bound on Stripe and mail calls.
}

// IsProduction reports whether the API runs with production error reporting
// (no details field in 500 responses).
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
