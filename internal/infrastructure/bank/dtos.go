package bank

const (
	tokenPath   = "/oauth/access_token"
	paymentPath = "/v2.0/payment-initiation/payments"

	paymentsScope = "payments"

	headerIdempotencyKey = "X-Idempotency-Key"
	headerRequestID      = "X-Request-ID"
)
