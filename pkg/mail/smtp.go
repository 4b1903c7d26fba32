package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// smtpSender delivers mail through an authenticated SMTP relay.
// It backs both the custom-SMTP and the Gmail transport branches.
type smtpSender struct {
	name   string
	client *gomail.Client
	from   string
}

// NewSMTPSender creates a transport for a caller-supplied SMTP relay.
// Host, user, and password are required; the port defaults to 587 and the
// secure flag switches TLS from opportunistic to mandatory.
func NewSMTPSender(cfg Config) (Sender, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("%w: SMTP host, user, and password are required", ErrInvalidConfig)
	}

	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	policy := gomail.TLSOpportunistic
	if cfg.SMTPSecure {
		policy = gomail.TLSMandatory
	}

	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(port),
		gomail.WithTLSPolicy(policy),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTPUser),
		gomail.WithPassword(cfg.SMTPPass),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &smtpSender{name: "smtp", client: client, from: cfg.From()}, nil
}

// NewGmailSender creates a transport that relays through Gmail's managed SMTP
// endpoint using an account and app password.
func NewGmailSender(cfg Config) (Sender, error) {
	if cfg.GmailUser == "" || cfg.GmailPass == "" {
		return nil, fmt.Errorf("%w: Gmail user and app password are required", ErrInvalidConfig)
	}

	client, err := gomail.NewClient("smtp.gmail.com",
		gomail.WithPort(587),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.GmailUser),
		gomail.WithPassword(cfg.GmailPass),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	from := cfg.FromEmail
	if from == "" {
		from = cfg.GmailUser
	}
	return &smtpSender{name: "gmail", client: client, from: from}, nil
}

func (s *smtpSender) Name() string { return s.name }

// Send delivers the message with a plain-text body and an HTML alternative.
func (s *smtpSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return Receipt{}, fmt.Errorf("%w: invalid from address: %v", ErrInvalidConfig, err)
	}
	if err := m.To(msg.To); err != nil {
		return Receipt{}, fmt.Errorf("%w: invalid recipient: %v", ErrInvalidMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetMessageID()

	if msg.BodyText != "" {
		m.SetBodyString(gomail.TypeTextPlain, msg.BodyText)
		if msg.BodyHTML != "" {
			m.AddAlternativeString(gomail.TypeTextHTML, msg.BodyHTML)
		}
	} else {
		m.SetBodyString(gomail.TypeTextHTML, msg.BodyHTML)
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return Receipt{}, errors.Join(ErrSendFailed, err)
	}

	return Receipt{MessageID: m.GetMessageID()}, nil
}
