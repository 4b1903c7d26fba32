package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	config Config
}

// NewPostmarkSender creates a Postmark-backed transport.
// The server token and a sender address are required; silent fallbacks here
// would hide broken production mail, so construction fails instead.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("%w: FromEmail is required for Postmark", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.FromEmail) {
		return nil, fmt.Errorf("%w: FromEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

func (s *postmarkSender) Name() string { return "postmark" }

// Send implements Sender using Postmark's transactional API.
// Open tracking is enabled for analytics. Reply-To is set to the support
// address when configured so customer responses reach the right inbox.
func (s *postmarkSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.config.FromEmail,
		ReplyTo:    s.config.SupportEmail,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.BodyHTML,
		TextBody:   msg.BodyText,
		TrackOpens: true,
	})
	if err != nil {
		return Receipt{}, errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return Receipt{}, errors.Join(
			ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return Receipt{MessageID: resp.MessageID}, nil
}
