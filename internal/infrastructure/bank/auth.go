package bank

import "net/http"

// basicAuthTransport sets HTTP Basic auth from the unescaped client id and secret.
// x/oauth2 URL-escapes both before encoding; CIMB expects base64 of the raw "id:secret".
type basicAuthTransport struct {
	clientID     string
	clientSecret string
	base         http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authReq := req.Clone(req.Context())
	authReq.SetBasicAuth(t.clientID, t.clientSecret)
	return t.base.RoundTrip(authReq)
}

// tokenHTTPClient wraps the shared client's transport for token requests only.
func tokenHTTPClient(httpClient *http.Client, clientID, clientSecret string) *http.Client {
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Timeout: httpClient.Timeout,
		Transport: &basicAuthTransport{
			clientID:     clientID,
			clientSecret: clientSecret,
			base:         base,
		},
	}
}
