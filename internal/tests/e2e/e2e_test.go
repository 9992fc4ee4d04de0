package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/DanielPopoola/northborne-storefront/internal/application/services"
	"github.com/DanielPopoola/northborne-storefront/internal/config"
	"github.com/DanielPopoola/northborne-storefront/internal/docs"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
	"github.com/DanielPopoola/northborne-storefront/internal/infrastructure/bank"
	"github.com/DanielPopoola/northborne-storefront/internal/infrastructure/stripe"
	"github.com/DanielPopoola/northborne-storefront/internal/interfaces/rest/handlers"
)

type E2ETestSuite struct {
	suite.Suite
	upstreams  *Upstreams
	storefront *httptest.Server
	client     *TestClient
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (suite *E2ETestSuite) SetupSuite() {
	t := suite.T()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	upstreams, upstreamServer := StartUpstreams(t)
	suite.upstreams = upstreams

	httpClient := &http.Client{Timeout: 5 * time.Second}

	sessions := stripe.NewSessionClient(config.StripeConfig{
		SecretKey: "sk_test_e2e",
		APIURL:    upstreamServer.URL,
	}, httpClient, logger)

	cimb := config.CIMBConfig{BaseURL: upstreamServer.URL}
	bankClient := bank.NewBankClient(cimb.Endpoint(domain.EnvironmentSandbox), "client-id", "client-secret", httpClient)

	checkoutService := services.NewCheckoutService(domain.DefaultCatalog(), sessions, "http://localhost:8000/", logger)
	bankPaymentService := services.NewBankPaymentService(bankClient, services.BankPaymentOptions{
		Environment:        domain.EnvironmentSandbox,
		SettlementAccount:  "00012345678",
		CreditorName:       "Northborne O Sabah - Amani Malaysia Group",
		DefaultDescription: "Investment in Northborne O Sabah",
	}, logger)

	openAPIDoc, err := docs.OpenAPI3JSON(context.Background())
	require.NoError(t, err)

	h := handlers.NewHandlers(checkoutService, bankPaymentService, handlers.Options{
		ServerName: "Northborne O Sabah Stripe Server",
		OpenAPIDoc: openAPIDoc,
	}, logger)

	suite.storefront = httptest.NewServer(h.Routes(handlers.RouteOptions{
		AllowedOrigins: []string{"*"},
		RequestTimeout: 5 * time.Second,
	}, logger))
	suite.client = NewTestClient(suite.storefront.URL)
}

func (suite *E2ETestSuite) TearDownSuite() {
	suite.storefront.Close()
}

func (suite *E2ETestSuite) SetupTest() {
	suite.upstreams.Reset()
}

func (suite *E2ETestSuite) TestHealth() {
	status, body := suite.client.Get(suite.T(), "/health")

	assert.Equal(suite.T(), http.StatusOK, status)
	assert.Equal(suite.T(), "ok", body["status"])
}

func (suite *E2ETestSuite) TestOpenAPIDocument() {
	status, body := suite.client.Get(suite.T(), "/openapi.json")

	require.Equal(suite.T(), http.StatusOK, status)
	paths, ok := body["paths"].(map[string]interface{})
	require.True(suite.T(), ok)
	assert.Contains(suite.T(), paths, "/create-checkout-session")
	assert.Contains(suite.T(), paths, "/create-cimb-payment")
}

func (suite *E2ETestSuite) TestCheckout_HappyPath() {
	t := suite.T()

	status, body := suite.client.Post(t, "/create-checkout-session", map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": "apple", "quantity": 2},
			{"id": "spice"},
		},
	})

	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", body["url"])

	recorded := suite.upstreams.Recorded()
	require.Len(t, recorded.SessionForms, 1)
	form := recorded.SessionForms[0]
	assert.Contains(t, form, "line_items%5B0%5D%5Bprice_data%5D%5Bunit_amount%5D=1200")
	assert.Contains(t, form, "line_items%5B0%5D%5Bquantity%5D=2")
	assert.Contains(t, form, "line_items%5B1%5D%5Bprice_data%5D%5Bunit_amount%5D=1500")
	assert.Contains(t, form, "line_items%5B1%5D%5Bquantity%5D=1")
	assert.Contains(t, form, "cancel_url=http%3A%2F%2Flocalhost%3A8000%2Fcancel.html")
}

func (suite *E2ETestSuite) TestCheckout_UnknownProductNeverReachesProvider() {
	t := suite.T()

	status, body := suite.client.Post(t, "/create-checkout-session", map[string]interface{}{
		"items": []map[string]interface{}{{"id": "apple"}, {"id": "durian"}},
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Unknown product: durian", body["error"])
	assert.Empty(t, suite.upstreams.Recorded().SessionForms)
}

func (suite *E2ETestSuite) TestCimbPayment_HappyPath() {
	t := suite.T()

	status, body := suite.client.Post(t, "/create-cimb-payment", map[string]interface{}{
		"amount":      150000,
		"currency":    "myr",
		"description": "Plot A-12",
	})

	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "PAY-E2E", body["payment_id"])
	assert.Equal(t, "RCVD", body["transaction_status"])
	assert.Equal(t, "https://consent.example/PAY-E2E", body["consent_url"])
	assert.Equal(t, "sandbox", body["environment"])

	recorded := suite.upstreams.Recorded()
	assert.Equal(t, 1, recorded.TokenCalls)
	require.Len(t, recorded.PaymentBodies, 1)

	payment := recorded.PaymentBodies[0]
	instructed := payment["instructedAmount"].(map[string]interface{})
	assert.Equal(t, "1500.00", instructed["amount"])
	assert.Equal(t, "MYR", instructed["currency"])
	assert.Equal(t, "Plot A-12", payment["remittanceInformation"])
	assert.Equal(t, recorded.IdempotencyIDs[0], payment["endToEndIdentification"])
	assert.True(t, strings.HasPrefix(recorded.IdempotencyIDs[0], "inv-"))
}

func (suite *E2ETestSuite) TestCimbPayment_KeysDifferAcrossAttempts() {
	t := suite.T()

	for i := 0; i < 2; i++ {
		status, _ := suite.client.Post(t, "/create-cimb-payment", map[string]interface{}{"amount": "500"})
		require.Equal(t, http.StatusOK, status)
	}

	recorded := suite.upstreams.Recorded()
	require.Len(t, recorded.IdempotencyIDs, 2)
	assert.NotEqual(t, recorded.IdempotencyIDs[0], recorded.IdempotencyIDs[1])
	assert.Equal(t, 2, recorded.TokenCalls)
}

func (suite *E2ETestSuite) TestCimbPayment_TokenRejected() {
	t := suite.T()
	suite.upstreams.Configure(func(u *Upstreams) { u.TokenStatus = http.StatusUnauthorized })

	status, body := suite.client.Post(t, "/create-cimb-payment", map[string]interface{}{"amount": 100})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Failed to authenticate with CIMB API", body["error"])
	assert.Empty(t, suite.upstreams.Recorded().PaymentBodies)
}

func (suite *E2ETestSuite) TestCimbPayment_RejectedOnceNoRetry() {
	t := suite.T()
	suite.upstreams.Configure(func(u *Upstreams) {
		u.PaymentStatus = http.StatusBadRequest
		u.PaymentBody = `{"message":"Invalid creditor account"}`
	})

	status, body := suite.client.Post(t, "/create-cimb-payment", map[string]interface{}{"amount": 100})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid creditor account", body["error"])
	assert.Len(t, suite.upstreams.Recorded().PaymentBodies, 1)
}

func (suite *E2ETestSuite) TestUnknownRoute() {
	status, body := suite.client.Get(suite.T(), "/admin")

	assert.Equal(suite.T(), http.StatusNotFound, status)
	assert.Equal(suite.T(), "Endpoint not found", body["error"])
}
