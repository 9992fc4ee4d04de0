package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/northborne-storefront/internal/application"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
)

const (
	providerName             = "cimb_connect_api"
	defaultTransactionStatus = "PENDING"
)

type BankPaymentOptions struct {
	Environment        domain.Environment
	SettlementAccount  string
	CreditorName       string
	DefaultDescription string
}

// PaymentResult is the normalized answer returned to the storefront.
type PaymentResult struct {
	Status             string             `json:"status"`
	Provider           string             `json:"provider"`
	Environment        domain.Environment `json:"environment"`
	PaymentID          string             `json:"payment_id"`
	Amount             json.Number        `json:"amount"`
	Currency           string             `json:"currency"`
	BeneficiaryAccount string             `json:"beneficiary_account"`
	BeneficiaryName    string             `json:"beneficiary_name"`
	Description        string             `json:"description"`
	TransactionStatus  string             `json:"transaction_status"`
	ConsentURL         *string            `json:"consent_url"`
	CreatedAt          time.Time          `json:"created_at"`
}

type BankPaymentService struct {
	client application.BankPaymentClient
	opts   BankPaymentOptions
	now    func() time.Time
	logger *slog.Logger
}

// NewBankPaymentService takes a nil client when bank credentials are missing.
func NewBankPaymentService(
	client application.BankPaymentClient,
	opts BankPaymentOptions,
	logger *slog.Logger,
) *BankPaymentService {
	return &BankPaymentService{
		client: client,
		opts:   opts,
		now:    time.Now,
		logger: logger,
	}
}

// CreatePayment authenticates with client credentials, then submits one payment
// initiation. Amount and configuration are checked before any network call.
func (s *BankPaymentService) CreatePayment(ctx context.Context, cmd CreateBankPaymentCommand) (*PaymentResult, error) {
	amount, err := domain.ParseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, domain.NewConfigurationError(
			"CIMB credentials not configured. Set STOREFRONT_CIMB__CLIENT_ID and STOREFRONT_CIMB__CLIENT_SECRET",
		)
	}

	currency := cmd.Currency
	if currency == "" {
		currency = domain.DefaultPaymentCurrency
	}
	description := cmd.Description
	if description == "" {
		description = s.opts.DefaultDescription
	}

	accessToken, err := s.client.FetchToken(ctx)
	if err != nil {
		s.logger.Error("bank token request failed", "error", err)
		if _, ok := application.IsProviderError(err); ok {
			return nil, domain.NewAuthenticationFailedError(err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("bank token request: %w", ctxErr)
		}
		return nil, domain.NewPaymentProviderError("Payment processing error: "+err.Error(), err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bank payment not sent: %w", err)
	}

	idempotencyKey := domain.NewIdempotencyKey(s.now())
	req := application.BankPaymentRequest{
		DebtorAccount: s.opts.SettlementAccount,
		InstructedAmount: application.InstructedAmount{
			Amount:   domain.MinorToMajor(amount),
			Currency: strings.ToUpper(currency),
		},
		CreditorAccount:        s.opts.SettlementAccount,
		CreditorName:           s.opts.CreditorName,
		RemittanceInformation:  description,
		EndToEndIdentification: idempotencyKey,
	}

	// A dispatched payment runs to completion; the outbound client timeout bounds it.
	resp, err := s.client.InitiatePayment(context.WithoutCancel(ctx), accessToken, req)
	if err != nil {
		s.logger.Error("bank payment creation failed", "error", err, "idempotency_key", idempotencyKey)
		if providerErr, ok := application.IsProviderError(err); ok {
			return nil, domain.NewPaymentCreationFailedError(providerErr.StatusCode, providerErr.Message)
		}
		return nil, domain.NewPaymentProviderError("Payment processing error: "+err.Error(), err)
	}

	result := &PaymentResult{
		Status:             "success",
		Provider:           providerName,
		Environment:        s.opts.Environment,
		PaymentID:          resp.PaymentID,
		Amount:             json.Number(amount.String()),
		Currency:           currency,
		BeneficiaryAccount: s.opts.SettlementAccount,
		BeneficiaryName:    s.opts.CreditorName,
		Description:        description,
		TransactionStatus:  resp.TransactionStatus,
		CreatedAt:          s.now().UTC(),
	}
	if result.PaymentID == "" {
		result.PaymentID = idempotencyKey
	}
	if result.TransactionStatus == "" {
		result.TransactionStatus = defaultTransactionStatus
	}
	if resp.Links != nil && resp.Links.ConsentURL != "" {
		consentURL := resp.Links.ConsentURL
		result.ConsentURL = &consentURL
	}

	s.logger.Info("bank payment created",
		"payment_id", result.PaymentID,
		"environment", result.Environment,
		"transaction_status", result.TransactionStatus,
	)

	return result, nil
}
