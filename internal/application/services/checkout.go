package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/northborne-storefront/internal/application"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
)

const checkoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"

type CheckoutService struct {
	catalog  *domain.Catalog
	sessions application.SessionCreator
	baseURL  string
	logger   *slog.Logger
}

// NewCheckoutService takes a nil sessions port when no provider key is configured.
func NewCheckoutService(
	catalog *domain.Catalog,
	sessions application.SessionCreator,
	baseURL string,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		sessions: sessions,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// CreateSession resolves the cart and returns the hosted checkout URL.
func (s *CheckoutService) CreateSession(ctx context.Context, cmd CreateCheckoutSessionCommand) (string, error) {
	lineItems, err := domain.BuildLineItems(s.catalog, cmd.Items)
	if err != nil {
		return "", err
	}

	if s.sessions == nil {
		return "", domain.NewConfigurationError("Stripe secret key not configured")
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("checkout session not sent: %w", err)
	}

	// A dispatched session request runs to completion; the outbound client timeout bounds it.
	url, err := s.sessions.CreateSession(context.WithoutCancel(ctx), application.SessionRequest{
		LineItems:  lineItems,
		SuccessURL: s.SuccessURL(),
		CancelURL:  s.CancelURL(),
	})
	if err != nil {
		s.logger.Error("checkout session creation failed", "error", err, "line_items", len(lineItems))
		if _, ok := domain.AsDomainError(err); ok {
			return "", err
		}
		return "", domain.NewPaymentProviderError(err.Error(), err)
	}

	s.logger.Info("checkout session created", "line_items", len(lineItems))
	return url, nil
}

func (s *CheckoutService) SuccessURL() string {
	return s.baseURL + "/success.html?session_id=" + checkoutSessionPlaceholder
}

func (s *CheckoutService) CancelURL() string {
	return s.baseURL + "/cancel.html"
}
