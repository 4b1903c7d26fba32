package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelcraft/checkout/pkg/payment"
)

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole dollars", 150, 15000},
		{"cents preserved", 49.99, 4999},
		{"rounds up above half cent", 10.006, 1001},
		{"rounds down below half cent", 10.004, 1000},
		{"floating point artifact", 0.1 + 0.2, 30},
		{"zero", 0, 0},
		{"negative passes through", -5.50, -550},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, payment.MinorUnits(tt.amount))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("missing secret key", func(t *testing.T) {
		t.Parallel()

		err := payment.Config{PublishableKey: "pk_test_123"}.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, payment.ErrInvalidConfig)
	})

	t.Run("secret key present", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, payment.Config{SecretKey: "sk_test_123"}.Validate())
	})
}

func TestConfigPresence(t *testing.T) {
	t.Parallel()

	got := payment.Config{SecretKey: "", PublishableKey: "pk_test_123"}.Presence()
	assert.Equal(t, []string{
		"STRIPE_PUBLISHABLE_KEY=true",
		"STRIPE_SECRET_KEY=false",
		"STRIPE_WEBHOOK_SECRET=false",
	}, got)

	// Secret values never leak into the diagnostic.
	for _, line := range got {
		assert.NotContains(t, line, "pk_test_123")
	}
}

func TestNewStripeProvider(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := payment.NewStripeProvider(payment.Config{})
		assert.ErrorIs(t, err, payment.ErrInvalidConfig)
	})

	t.Run("constructs with key", func(t *testing.T) {
		t.Parallel()

		p, err := payment.NewStripeProvider(payment.Config{SecretKey: "sk_test_123"})
		require.NoError(t, err)
		assert.NotNil(t, p)
	})
}
