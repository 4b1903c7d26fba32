package mail

import "errors"

var (
	// ErrInvalidConfig indicates the transport could not be constructed from
	// the current configuration.
	ErrInvalidConfig = errors.New("mail.errors.invalid_config")
	// ErrInvalidMessage indicates the message failed pre-send validation.
	ErrInvalidMessage = errors.New("mail.errors.invalid_message")
	// ErrSendFailed indicates the transport accepted the message but delivery failed.
	ErrSendFailed = errors.New("mail.errors.failed_to_send")
)
