package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/DanielPopoola/northborne-storefront/internal/application"
)

const providerName = "cimb"

// HTTPBankClient talks to the CIMB Connect API. Each call is a single attempt.
type HTTPBankClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenClient *http.Client
	credentials clientcredentials.Config
}

func NewBankClient(baseURL, clientID, clientSecret string, httpClient *http.Client) *HTTPBankClient {
	return &HTTPBankClient{
		baseURL:     baseURL,
		httpClient:  httpClient,
		tokenClient: tokenHTTPClient(httpClient, clientID, clientSecret),
		credentials: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     baseURL + tokenPath,
			Scopes:       []string{paymentsScope},
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
	}
}

var _ application.BankPaymentClient = (*HTTPBankClient)(nil)

// FetchToken requests a fresh payments-scoped token; tokens are not cached between requests.
func (c *HTTPBankClient) FetchToken(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.tokenClient)

	token, err := c.credentials.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			return "", &application.ProviderError{
				Provider:   providerName,
				Operation:  "token",
				StatusCode: status,
				Message:    providerMessage(retrieveErr.Body),
			}
		}
		return "", fmt.Errorf("error requesting access token: %w", err)
	}

	return token.AccessToken, nil
}

func (c *HTTPBankClient) InitiatePayment(ctx context.Context, accessToken string, req application.BankPaymentRequest) (*application.BankPaymentResponse, error) {
	url := c.baseURL + paymentPath
	return sendRequest[application.BankPaymentRequest, application.BankPaymentResponse](
		c, ctx, http.MethodPost, url, &req, accessToken, req.EndToEndIdentification,
	)
}

func sendRequest[Req any, Resp any](c *HTTPBankClient, ctx context.Context, method, url string, reqBody *Req, accessToken, idempotencyKey string) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	if idempotencyKey != "" {
		httpReq.Header.Set(headerIdempotencyKey, idempotencyKey)
		httpReq.Header.Set(headerRequestID, idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &application.ProviderError{
			Provider:   providerName,
			Operation:  "payment",
			StatusCode: resp.StatusCode,
			Message:    providerMessage(body),
		}
	}

	var bankResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &bankResp, nil
}
