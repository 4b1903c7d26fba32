package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelcraft/checkout/internal/api"
	"github.com/pixelcraft/checkout/internal/invoice"
	"github.com/pixelcraft/checkout/pkg/mail"
	"github.com/pixelcraft/checkout/pkg/payment"
)

func TestNewRouter(t *testing.T) {
	t.Parallel()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "logo.png"), []byte("png-bytes"), 0644))

	cfg := api.Config{
		Env:             "test",
		BaseURL:         "http://localhost:8080",
		BrandName:       "Pixelcraft Studio",
		StaticDir:       staticDir,
		AllowedOrigins:  []string{"*"},
		UpstreamTimeout: 5 * time.Second,
	}
	composer, err := invoice.NewComposer(cfg.BaseURL, cfg.BrandName)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := &stubProvider{intent: payment.Intent{ClientSecret: "secret"}}
	sender := &stubSender{name: "stub", receipt: mail.Receipt{MessageID: "m"}}
	h := api.NewHandler(cfg, log, provider, composer, mail.Config{},
		api.WithSenderSelector(func(mail.Config) (mail.Sender, error) { return sender, nil }))

	srv := httptest.NewServer(api.NewRouter(h, log))
	defer srv.Close()

	t.Run("health route", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	})

	t.Run("payment route rejects GET", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/create-payment-intent")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("static files served at web root", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/logo.png")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("CORS preflight allowed", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/create-payment-intent", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://storefront.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
