package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Environment selects the bank endpoint set. It comes from deployment config, never from a request.
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

const DefaultPaymentCurrency = "MYR"

const maxAmountLength = 20

var (
	minorUnitsPerMajor = decimal.NewFromInt(100)
	// MaxMinorAmount caps a single payment at one billion in major units.
	MaxMinorAmount = decimal.New(1, 11)
)

// ParseAmount parses a client supplied amount in minor units. Only positive,
// plain decimal numbers up to MaxMinorAmount are accepted; exponent notation is not.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountLength || strings.ContainsAny(raw, "eE") {
		return decimal.Zero, NewInvalidAmountError()
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewInvalidAmountError()
	}
	if !amount.IsPositive() || amount.GreaterThan(MaxMinorAmount) {
		return decimal.Zero, NewInvalidAmountError()
	}
	return amount, nil
}

// MinorToMajor renders minor units as a two decimal major unit string: 150000 -> "1500.00".
func MinorToMajor(minor decimal.Decimal) string {
	return minor.Div(minorUnitsPerMajor).StringFixed(2)
}

// NewIdempotencyKey combines a millisecond timestamp with a random suffix.
// Uniqueness across concurrent requests is probabilistic.
func NewIdempotencyKey(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("inv-%d-%s", now.UnixMilli(), suffix)
}
