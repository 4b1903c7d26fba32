package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pixelcraft/checkout/internal/api"
	"github.com/pixelcraft/checkout/internal/invoice"
	"github.com/pixelcraft/checkout/pkg/config"
	"github.com/pixelcraft/checkout/pkg/httpserver"
	"github.com/pixelcraft/checkout/pkg/logger"
	"github.com/pixelcraft/checkout/pkg/mail"
	"github.com/pixelcraft/checkout/pkg/payment"
)

// bootConfig carries the settings only main cares about.
type bootConfig struct {
	Port string `env:"PORT"` // overrides HTTP_ADDR when set, for PaaS-style deployments
}

func main() {
	var (
		bootCfg bootConfig
		apiCfg  api.Config
		mailCfg mail.Config
		payCfg  payment.Config
		srvCfg  httpserver.Config
	)
	config.MustLoad(&bootCfg)
	config.MustLoad(&apiCfg)
	config.MustLoad(&mailCfg)
	config.MustLoad(&payCfg)
	config.MustLoad(&srvCfg)

	log := logger.New(logger.WithEnvironment(apiCfg.Env, "checkout-api"))
	logger.SetAsDefault(log)

	// No request can succeed without the payment secret, so refuse to start.
	// The diagnostic lists variable presence only, never values.
	if err := payCfg.Validate(); err != nil {
		log.Error("payment processor is not configured",
			logger.Error(err),
			slog.Any("payment_env_present", payCfg.Presence()))
		os.Exit(1)
	}

	payments, err := payment.NewStripeProvider(payCfg)
	if err != nil {
		log.Error("failed to initialize payment provider", logger.Error(err))
		os.Exit(1)
	}

	composer, err := invoice.NewComposer(apiCfg.BaseURL, apiCfg.BrandName)
	if err != nil {
		log.Error("failed to initialize invoice composer", logger.Error(err))
		os.Exit(1)
	}

	log.Info("mail transport selected", logger.Transport(mailCfg.TransportName()))

	handler := api.NewHandler(apiCfg, log, payments, composer, mailCfg)
	router := api.NewRouter(handler, log)

	opts := []httpserver.Option{httpserver.WithLogger(log)}
	if bootCfg.Port != "" {
		opts = append(opts, httpserver.WithAddr(":"+bootCfg.Port))
	}
	srv := httpserver.NewFromConfig(srvCfg, opts...)

	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
