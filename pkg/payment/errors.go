package payment

import "errors"

var (
	// ErrInvalidConfig indicates the provider cannot be constructed from the
	// current configuration.
	ErrInvalidConfig = errors.New("payment.errors.invalid_config")
	// ErrIntentFailed indicates the processor rejected or failed the
	// payment-intent request.
	ErrIntentFailed = errors.New("payment.errors.intent_failed")
)
