package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/DanielPopoola/northborne-storefront/internal/application/services"
)

// Handlers serves the storefront's JSON API.
type Handlers struct {
	checkoutService    *services.CheckoutService
	bankPaymentService *services.BankPaymentService
	serverName         string
	openAPIDoc         []byte
	static             http.FileSystem
	validate           *validator.Validate
	logger             *slog.Logger
}

type Options struct {
	ServerName string
	// OpenAPIDoc is served verbatim at /openapi.json when set.
	OpenAPIDoc []byte
	// StaticDir holds the storefront UI; empty disables static serving.
	StaticDir string
}

func NewHandlers(
	checkoutService *services.CheckoutService,
	bankPaymentService *services.BankPaymentService,
	opts Options,
	logger *slog.Logger,
) *Handlers {
	h := &Handlers{
		checkoutService:    checkoutService,
		bankPaymentService: bankPaymentService,
		serverName:         opts.ServerName,
		openAPIDoc:         opts.OpenAPIDoc,
		validate:           validator.New(),
		logger:             logger,
	}
	if opts.StaticDir != "" {
		h.static = http.Dir(opts.StaticDir)
	}
	return h
}
