package payment

import (
	"context"
	"math"
)

// Provider defines the minimal interface for payment-processor integrations.
// The abstraction keeps the route layer off the vendor SDK so the processor
// can be swapped or stubbed in tests.
type Provider interface {
	// CreateIntent registers a payment of the given dollar amount with the
	// processor and returns the handle the frontend needs to confirm it.
	CreateIntent(ctx context.Context, amountDollars float64) (Intent, error)
}

// Intent is the processor's handle for a pending payment.
type Intent struct {
	ID           string // Processor-assigned intent identifier
	ClientSecret string // Returned verbatim to the frontend
}

// MinorUnits converts a dollar amount to integer cents, rounding to the
// nearest cent. Negative and zero amounts pass through unvalidated; the
// processor's own rejection is the effective boundary.
func MinorUnits(amountDollars float64) int64 {
	return int64(math.Round(amountDollars * 100))
}
