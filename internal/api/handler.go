package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pixelcraft/checkout/internal/invoice"
	"github.com/pixelcraft/checkout/pkg/logger"
	"github.com/pixelcraft/checkout/pkg/mail"
	"github.com/pixelcraft/checkout/pkg/payment"
)

// SenderSelector builds an outbound mail transport from configuration.
// Matches mail.SelectSender; injectable so tests can substitute a stub.
type SenderSelector func(mail.Config) (mail.Sender, error)

// Handler carries the route layer's dependencies. No state is shared between
// requests beyond the read-only configuration.
type Handler struct {
	cfg          Config
	log          *slog.Logger
	payments     payment.Provider
	composer     *invoice.Composer
	mailCfg      mail.Config
	selectSender SenderSelector
}

// HandlerOption customizes Handler construction.
type HandlerOption func(*Handler)

// WithSenderSelector replaces the transport selector. Intended for tests.
func WithSenderSelector(s SenderSelector) HandlerOption {
	return func(h *Handler) {
		if s != nil {
			h.selectSender = s
		}
	}
}

// NewHandler creates the route-layer handler set.
func NewHandler(cfg Config, log *slog.Logger, payments payment.Provider, composer *invoice.Composer, mailCfg mail.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		cfg:          cfg,
		log:          log,
		payments:     payments,
		composer:     composer,
		mailCfg:      mailCfg,
		selectSender: mail.SelectSender,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// upstreamContext bounds outbound Stripe and mail calls so a hanging external
// service cannot pin the request forever.
func (h *Handler) upstreamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := h.cfg.UpstreamTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// Health reports process liveness. No side effects.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Env,
	})
}

type createPaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

// CreatePaymentIntent forwards the requested amount to the payment processor
// and returns its client secret verbatim. The amount is intentionally not
// validated here; the processor's own rejection is the boundary.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createPaymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid request body", err, h.cfg.IsProduction(), nil))
		return
	}

	ctx, cancel := h.upstreamContext(r.Context())
	defer cancel()

	intent, err := h.payments.CreateIntent(ctx, req.Amount)
	if err != nil {
		h.log.ErrorContext(r.Context(), "payment intent creation failed",
			logger.Error(err), slog.Float64("amount", req.Amount))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	h.log.InfoContext(r.Context(), "payment intent created", slog.String("intent_id", intent.ID))
	writeJSON(w, http.StatusOK, map[string]any{"clientSecret": intent.ClientSecret})
}

type sendInvoiceEmailRequest struct {
	SelectedService *invoice.Service  `json:"selectedService"`
	PaymentData     *invoice.Customer `json:"paymentData"`
	PaymentIntentID string            `json:"paymentIntentId"`
	OrderNumber     string            `json:"orderNumber"`
	OrderDate       string            `json:"orderDate"`
}

// missingFields lists the required fields absent from the request.
func (r sendInvoiceEmailRequest) missingFields() []string {
	var missing []string
	if r.SelectedService == nil {
		missing = append(missing, "selectedService")
	}
	if r.PaymentData == nil || r.PaymentData.Email == "" {
		missing = append(missing, "paymentData.email")
	}
	return missing
}

// SendInvoiceEmail composes an order-confirmation email and delivers it
// through whichever transport the current configuration selects.
func (h *Handler) SendInvoiceEmail(w http.ResponseWriter, r *http.Request) {
	var req sendInvoiceEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid request body", err, h.cfg.IsProduction(), nil))
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		})
		return
	}

	var orderDate time.Time
	if req.OrderDate != "" {
		// A malformed date falls back to the composer's default (now).
		parsed, err := time.Parse(time.RFC3339, req.OrderDate)
		if err != nil {
			h.log.DebugContext(r.Context(), "ignoring unparseable order date",
				slog.String("order_date", req.OrderDate), logger.Error(err))
		} else {
			orderDate = parsed
		}
	}

	email, err := h.composer.Compose(invoice.Order{
		Number:          req.OrderNumber,
		Date:            orderDate,
		Service:         *req.SelectedService,
		Customer:        *req.PaymentData,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "invoice composition failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError,
			errorBody("Failed to send invoice email", err, h.cfg.IsProduction(), nil))
		return
	}

	sender, err := h.selectSender(h.mailCfg)
	if err != nil {
		h.log.ErrorContext(r.Context(), "mail transport construction failed",
			logger.Error(err), logger.Transport(h.mailCfg.TransportName()))
		writeJSON(w, http.StatusInternalServerError,
			errorBody("Failed to send invoice email", err, h.cfg.IsProduction(), nil))
		return
	}

	ctx, cancel := h.upstreamContext(r.Context())
	defer cancel()

	receipt, err := sender.Send(ctx, mail.Message{
		To:       req.PaymentData.Email,
		Subject:  email.Subject,
		BodyHTML: email.BodyHTML,
		BodyText: email.BodyText,
		Tag:      "invoice",
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "invoice email delivery failed",
			logger.Error(err), logger.Transport(sender.Name()), logger.OrderNumber(email.OrderNumber))
		writeJSON(w, http.StatusInternalServerError,
			errorBody("Failed to send invoice email", err, h.cfg.IsProduction(), nil))
		return
	}

	h.log.InfoContext(r.Context(), "invoice email sent",
		logger.Transport(sender.Name()),
		logger.OrderNumber(email.OrderNumber),
		logger.MessageID(receipt.MessageID))

	resp := map[string]any{
		"success":     true,
		"messageId":   receipt.MessageID,
		"orderNumber": email.OrderNumber,
	}
	if receipt.PreviewURL != "" {
		resp["previewUrl"] = receipt.PreviewURL
	}
	writeJSON(w, http.StatusOK, resp)
}

// TestEmail sends a canned message through the currently selected transport
// so operators can verify mail configuration without placing an order.
func (h *Handler) TestEmail(w http.ResponseWriter, r *http.Request) {
	transport := h.mailCfg.TransportName()

	sender, err := h.selectSender(h.mailCfg)
	if err != nil {
		h.log.ErrorContext(r.Context(), "mail transport construction failed",
			logger.Error(err), logger.Transport(transport))
		writeJSON(w, http.StatusInternalServerError,
			errorBody("Failed to send test email", err, h.cfg.IsProduction(), map[string]any{"service": transport}))
		return
	}

	to := h.mailCfg.SupportEmail
	if to == "" {
		to = h.mailCfg.From()
	}

	ctx, cancel := h.upstreamContext(r.Context())
	defer cancel()

	receipt, err := sender.Send(ctx, mail.Message{
		To:       to,
		Subject:  fmt.Sprintf("Test Email - %s", h.cfg.BrandName),
		BodyHTML: "<p>This is a test email confirming the mail transport is configured correctly.</p>",
		BodyText: "This is a test email confirming the mail transport is configured correctly.",
		Tag:      "test-email",
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "test email delivery failed",
			logger.Error(err), logger.Transport(sender.Name()))
		writeJSON(w, http.StatusInternalServerError,
			errorBody("Failed to send test email", err, h.cfg.IsProduction(), map[string]any{"service": sender.Name()}))
		return
	}

	h.log.InfoContext(r.Context(), "test email sent",
		logger.Transport(sender.Name()), logger.MessageID(receipt.MessageID))

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Test email sent to %s", to),
		"service": sender.Name(),
	})
}
