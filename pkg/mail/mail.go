package mail

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender represents an outbound mail transport.
type Sender interface {
	// Name identifies the transport ("smtp", "postmark", "gmail", "dev").
	Name() string
	// Send delivers a message and returns a delivery receipt.
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Message represents a single outbound email.
type Message struct {
	To       string `json:"to"`            // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	BodyText string `json:"body_text"`     // Plain-text alternative body
	Tag      string `json:"tag,omitempty"` // Optional, used for analytics and dev-sink filenames
}

// Receipt describes an accepted delivery.
type Receipt struct {
	MessageID  string // Transport-assigned message identifier
	PreviewURL string // Set only by transports that expose a preview (dev sink)
}

// emailRegex is intentionally permissive; the receiving transport performs
// the authoritative validation.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks that the message has a deliverable recipient and a body.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(strings.TrimSpace(m.To)) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if m.BodyHTML == "" && m.BodyText == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidMessage)
	}
	return nil
}
