package stripe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/DanielPopoola/northborne-storefront/internal/application"
	"github.com/DanielPopoola/northborne-storefront/internal/config"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
)

const (
	paymentMethodCard = "card"
	localeAuto        = "auto"
)

// SessionClient creates hosted checkout sessions.
type SessionClient struct {
	api    *client.API
	logger *slog.Logger
}

var _ application.SessionCreator = (*SessionClient)(nil)

func NewSessionClient(cfg config.StripeConfig, httpClient *http.Client, logger *slog.Logger) *SessionClient {
	backendConfig := func(url string) *stripego.BackendConfig {
		bc := &stripego.BackendConfig{
			HTTPClient:        httpClient,
			LeveledLogger:     &leveledLogger{logger: logger},
			MaxNetworkRetries: stripego.Int64(0),
		}
		if url != "" {
			bc.URL = stripego.String(url)
		}
		return bc
	}

	backends := &stripego.Backends{
		API:     stripego.GetBackendWithConfig(stripego.APIBackend, backendConfig(cfg.APIURL)),
		Connect: stripego.GetBackendWithConfig(stripego.ConnectBackend, backendConfig("")),
		Uploads: stripego.GetBackendWithConfig(stripego.UploadsBackend, backendConfig("")),
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, backends)

	return &SessionClient{
		api:    api,
		logger: logger,
	}
}

// CreateSession submits one payment-mode session and returns its hosted URL.
func (c *SessionClient) CreateSession(ctx context.Context, req application.SessionRequest) (string, error) {
	if len(req.LineItems) == 0 {
		return "", domain.NewEmptyCartError()
	}

	params := &stripego.CheckoutSessionParams{
		PaymentMethodTypes: stripego.StringSlice([]string{paymentMethodCard}),
		LineItems:          toLineItemParams(req.LineItems),
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL:         stripego.String(req.SuccessURL),
		CancelURL:          stripego.String(req.CancelURL),
		Locale:             stripego.String(localeAuto),
	}
	params.Context = ctx

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) {
			return "", domain.NewPaymentProviderError(stripeErr.Msg, err)
		}
		return "", domain.NewPaymentProviderError(fmt.Sprintf("checkout session request failed: %v", err), err)
	}

	c.logger.Debug("stripe checkout session created", "session_id", session.ID)
	return session.URL, nil
}

func toLineItemParams(lineItems []domain.LineItem) []*stripego.CheckoutSessionLineItemParams {
	params := make([]*stripego.CheckoutSessionLineItemParams, 0, len(lineItems))
	for _, item := range lineItems {
		productData := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripego.String(item.ProductName),
		}
		if item.Image != "" {
			productData.Images = stripego.StringSlice([]string{item.Image})
		}

		params = append(params, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripego.String(item.Currency),
				ProductData: productData,
				UnitAmount:  stripego.Int64(item.UnitAmount),
			},
			Quantity: stripego.Int64(item.Quantity),
		})
	}
	return params
}
