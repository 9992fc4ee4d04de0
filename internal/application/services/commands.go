package services

import "github.com/DanielPopoola/northborne-storefront/internal/domain"

type CreateCheckoutSessionCommand struct {
	Items []domain.CartItem
}

// CreateBankPaymentCommand carries the raw client amount in minor units. Currency and
// Description fall back to service defaults when empty.
type CreateBankPaymentCommand struct {
	Amount      string
	Currency    string
	Description string
}
