package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pixelcraft/checkout/pkg/logger"
)

// NewRouter assembles the HTTP surface: JSON API routes plus the static
// directory served at the web root (hosts the logo the invoice email links to).
func NewRouter(h *Handler, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Post("/create-payment-intent", h.CreatePaymentIntent)
	r.Post("/send-invoice-email", h.SendInvoiceEmail)
	r.Post("/test-email", h.TestEmail)

	if h.cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(h.cfg.StaticDir)))
	}

	return r
}

// requestLogger logs one line per completed request with method, path,
// status, and duration.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				logger.Component("api"),
			)
		})
	}
}
