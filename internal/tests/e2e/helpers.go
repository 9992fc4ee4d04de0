package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the storefront
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Post sends body as JSON and returns the status with the decoded response.
func (c *TestClient) Post(t *testing.T, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(t, httpReq)
}

func (c *TestClient) Get(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()

	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	require.NoError(t, err)

	return c.do(t, httpReq)
}

func (c *TestClient) do(t *testing.T, httpReq *http.Request) (int, map[string]interface{}) {
	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(bodyBytes, &decoded), "status %d: %s", resp.StatusCode, bodyBytes)
	return resp.StatusCode, decoded
}

// Upstreams fakes the hosted checkout and bank APIs on one server.
type Upstreams struct {
	mu sync.Mutex

	TokenStatus   int
	PaymentStatus int
	PaymentBody   string

	SessionForms   []string
	TokenCalls     int
	PaymentBodies  []map[string]interface{}
	IdempotencyIDs []string
}

func (u *Upstreams) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		u.mu.Lock()
		u.SessionForms = append(u.SessionForms, r.PostForm.Encode())
		n := len(u.SessionForms)
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"cs_test_%d","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_%d"}`, n, n)
	})

	mux.HandleFunc("POST /oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.TokenCalls++
		status := u.TokenStatus
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if status != 0 && status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"e2e-token","token_type":"Bearer","expires_in":3600}`))
	})

	mux.HandleFunc("POST /v2.0/payment-initiation/payments", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)

		u.mu.Lock()
		u.PaymentBodies = append(u.PaymentBodies, body)
		u.IdempotencyIDs = append(u.IdempotencyIDs, r.Header.Get("X-Idempotency-Key"))
		status, respBody := u.PaymentStatus, u.PaymentBody
		u.mu.Unlock()

		if status == 0 {
			status = http.StatusCreated
		}
		if respBody == "" {
			respBody = `{"paymentId":"PAY-E2E","transactionStatus":"RCVD","links":{"consentUrl":"https://consent.example/PAY-E2E"}}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	})

	return mux
}

// Recorded is what the fake upstreams have seen so far.
type Recorded struct {
	SessionForms   []string
	TokenCalls     int
	PaymentBodies  []map[string]interface{}
	IdempotencyIDs []string
}

func (u *Upstreams) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.TokenStatus, u.PaymentStatus, u.PaymentBody = 0, 0, ""
	u.SessionForms, u.TokenCalls, u.PaymentBodies, u.IdempotencyIDs = nil, 0, nil, nil
}

func (u *Upstreams) Recorded() Recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	return Recorded{
		SessionForms:   append([]string(nil), u.SessionForms...),
		TokenCalls:     u.TokenCalls,
		PaymentBodies:  append([]map[string]interface{}(nil), u.PaymentBodies...),
		IdempotencyIDs: append([]string(nil), u.IdempotencyIDs...),
	}
}

func (u *Upstreams) Configure(fn func(u *Upstreams)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(u)
}

func StartUpstreams(t *testing.T) (*Upstreams, *httptest.Server) {
	u := &Upstreams{}
	server := httptest.NewServer(u.Handler())
	t.Cleanup(server.Close)
	return u, server
}
