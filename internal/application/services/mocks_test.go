package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/DanielPopoola/northborne-storefront/internal/application"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockSessionCreator
type MockSessionCreator struct {
	mu       sync.Mutex
	requests []application.SessionRequest

	CreateSessionFn func(ctx context.Context, req application.SessionRequest) (string, error)
}

func (m *MockSessionCreator) CreateSession(ctx context.Context, req application.SessionRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.CreateSessionFn != nil {
		return m.CreateSessionFn(ctx, req)
	}
	return "https://checkout.stripe.com/c/pay/cs_test_123", nil
}

func (m *MockSessionCreator) Calls() []application.SessionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]application.SessionRequest(nil), m.requests...)
}

// MockBankPaymentClient
type MockBankPaymentClient struct {
	mu           sync.Mutex
	tokenCalls   int
	paymentCalls []application.BankPaymentRequest
	seenTokens   []string

	FetchTokenFn      func(ctx context.Context) (string, error)
	InitiatePaymentFn func(ctx context.Context, accessToken string, req application.BankPaymentRequest) (*application.BankPaymentResponse, error)
}

func (m *MockBankPaymentClient) FetchToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.tokenCalls++
	m.mu.Unlock()
	if m.FetchTokenFn != nil {
		return m.FetchTokenFn(ctx)
	}
	return "token-123", nil
}

func (m *MockBankPaymentClient) InitiatePayment(ctx context.Context, accessToken string, req application.BankPaymentRequest) (*application.BankPaymentResponse, error) {
	m.mu.Lock()
	m.paymentCalls = append(m.paymentCalls, req)
	m.seenTokens = append(m.seenTokens, accessToken)
	m.mu.Unlock()
	if m.InitiatePaymentFn != nil {
		return m.InitiatePaymentFn(ctx, accessToken, req)
	}
	return &application.BankPaymentResponse{
		PaymentID:         "pay-123",
		TransactionStatus: "ACCP",
	}, nil
}

func (m *MockBankPaymentClient) TokenCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokenCalls
}

func (m *MockBankPaymentClient) PaymentCalls() []application.BankPaymentRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]application.BankPaymentRequest(nil), m.paymentCalls...)
}
