package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/DanielPopoola/northborne-storefront/internal/application"
	"github.com/DanielPopoola/northborne-storefront/internal/application/services"
	"github.com/DanielPopoola/northborne-storefront/internal/config"
	"github.com/DanielPopoola/northborne-storefront/internal/docs"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
	"github.com/DanielPopoola/northborne-storefront/internal/infrastructure/bank"
	"github.com/DanielPopoola/northborne-storefront/internal/infrastructure/stripe"
	"github.com/DanielPopoola/northborne-storefront/internal/interfaces/rest/handlers"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting storefront service",
		"port", cfg.Server.Port,
		"environment", cfg.Primary.Env,
		"log_level", cfg.Logger.Level,
	)

	if cfg.Stripe.IsPlaceholder() {
		logger.Warn("stripe secret key is missing or still the placeholder, set STOREFRONT_STRIPE__SECRET_KEY")
	}
	var sessions application.SessionCreator
	if cfg.Stripe.Configured() {
		sessions = stripe.NewSessionClient(cfg.Stripe, outboundClient(cfg.Stripe.Timeout), logger)
	}

	var bankClient application.BankPaymentClient
	if cfg.CIMB.Configured() {
		endpoint := cfg.CIMB.Endpoint(cfg.Primary.Env)
		bankClient = bank.NewBankClient(endpoint, cfg.CIMB.ClientID, cfg.CIMB.ClientSecret, outboundClient(cfg.CIMB.ConnTimeout))
		logger.Info("cimb client configured", "endpoint", endpoint)
	} else {
		logger.Warn("cimb credentials not configured, bank payments will fail",
			"required", []string{"STOREFRONT_CIMB__CLIENT_ID", "STOREFRONT_CIMB__CLIENT_SECRET"},
		)
	}

	checkoutService := services.NewCheckoutService(domain.DefaultCatalog(), sessions, cfg.Server.BaseURL, logger)
	bankPaymentService := services.NewBankPaymentService(bankClient, services.BankPaymentOptions{
		Environment:        cfg.Primary.Env,
		SettlementAccount:  cfg.CIMB.SettlementAccount,
		CreditorName:       cfg.CIMB.CreditorName,
		DefaultDescription: cfg.CIMB.DefaultDescription,
	}, logger)

	openAPIDoc, err := docs.OpenAPI3JSON(context.Background())
	if err != nil {
		logger.Error("failed to build openapi document", "error", err)
		os.Exit(1)
	}

	h := handlers.NewHandlers(checkoutService, bankPaymentService, handlers.Options{
		ServerName: cfg.Server.Name,
		OpenAPIDoc: openAPIDoc,
		StaticDir:  cfg.Server.StaticDir,
	}, logger)

	handler := h.Routes(handlers.RouteOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, logger)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting",
			"addr", server.Addr,
			"routes", []string{
				"GET /health",
				"POST /create-checkout-session",
				"POST /create-cimb-payment",
				"GET /openapi.json",
			},
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// outboundClient bounds a provider call, which is never cancelled by the inbound request.
func outboundClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
