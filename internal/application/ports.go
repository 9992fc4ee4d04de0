package application

import (
	"context"

	"github.com/DanielPopoola/northborne-storefront/internal/domain"
)

// SessionCreator is the port for the hosted checkout provider.
type SessionCreator interface {
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}

// BankPaymentClient is the port for the bank payment-initiation API.
type BankPaymentClient interface {
	FetchToken(ctx context.Context) (string, error)
	InitiatePayment(ctx context.Context, accessToken string, req BankPaymentRequest) (*BankPaymentResponse, error)
}

type SessionRequest struct {
	LineItems  []domain.LineItem
	SuccessURL string
	CancelURL  string
}

type InstructedAmount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// BankPaymentRequest is sent as-is to the bank. EndToEndIdentification doubles as the
// idempotency and request id headers.
type BankPaymentRequest struct {
	DebtorAccount          string           `json:"debtorAccount"`
	InstructedAmount       InstructedAmount `json:"instructedAmount"`
	CreditorAccount        string           `json:"creditorAccount"`
	CreditorName           string           `json:"creditorName"`
	RemittanceInformation  string           `json:"remittanceInformation"`
	EndToEndIdentification string           `json:"endToEndIdentification"`
}

type BankPaymentLinks struct {
	ConsentURL string `json:"consentUrl"`
}

type BankPaymentResponse struct {
	PaymentID         string            `json:"paymentId"`
	TransactionStatus string            `json:"transactionStatus"`
	Links             *BankPaymentLinks `json:"links,omitempty"`
}
