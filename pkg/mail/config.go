package mail

// Config holds outbound mail configuration. All transport credentials are
// optional: which transport is used follows from which credentials are set
// (see SelectSender). FromEmail overrides the derived sender address.
type Config struct {
	SMTPHost   string `env:"SMTP_HOST"`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure bool   `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUser   string `env:"SMTP_USER"`
	SMTPPass   string `env:"SMTP_PASS"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	GmailUser string `env:"GMAIL_USER"`
	GmailPass string `env:"GMAIL_APP_PASSWORD"`

	FromEmail    string `env:"EMAIL_FROM"`
	SupportEmail string `env:"SUPPORT_EMAIL"`

	DevDir string `env:"DEV_MAIL_DIR" envDefault:"./dev-mail"`
}

// From resolves the sender address: explicit override first, then the
// authenticated account of whichever transport is configured.
func (c Config) From() string {
	switch {
	case c.FromEmail != "":
		return c.FromEmail
	case c.SMTPUser != "":
		return c.SMTPUser
	case c.GmailUser != "":
		return c.GmailUser
	default:
		// Must pass Message.Validate so the dev sink works with zero config.
		return "no-reply@localhost.localdomain"
	}
}

// TransportName reports which transport SelectSender will build for this
// configuration, without constructing it. Useful for diagnostics when
// construction itself fails.
func (c Config) TransportName() string {
	switch {
	case c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "":
		return "smtp"
	case c.PostmarkServerToken != "":
		return "postmark"
	case c.GmailUser != "" && c.GmailPass != "":
		return "gmail"
	default:
		return "dev"
	}
}

// SelectSender chooses the outbound transport from the current configuration.
// First match wins: custom SMTP, then Postmark, then the Gmail relay, and
// finally the dev sink which accepts everything without real delivery.
// It is a pure function of cfg; callers may invoke it fresh per send.
func SelectSender(cfg Config) (Sender, error) {
	switch cfg.TransportName() {
	case "smtp":
		return NewSMTPSender(cfg)
	case "postmark":
		return NewPostmarkSender(cfg)
	case "gmail":
		return NewGmailSender(cfg)
	default:
		return NewDevSender(cfg.DevDir), nil
	}
}
