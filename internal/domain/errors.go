package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	// ProviderStatus is the upstream HTTP status for provider failures, zero otherwise.
	ProviderStatus int
	Err            error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeEmptyCart             = "EMPTY_CART"
	ErrCodeUnknownProduct        = "UNKNOWN_PRODUCT"
	ErrCodeInvalidAmount         = "INVALID_AMOUNT"
	ErrCodeInvalidInput          = "INVALID_INPUT"
	ErrCodeConfiguration         = "CONFIGURATION_ERROR"
	ErrCodeAuthenticationFailed  = "AUTHENTICATION_FAILED"
	ErrCodePaymentCreationFailed = "PAYMENT_CREATION_FAILED"
	ErrCodePaymentProvider       = "PAYMENT_PROVIDER_ERROR"
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeInternal              = "INTERNAL_ERROR"
)

func NewEmptyCartError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyCart,
		Message: "No items in cart",
	}
}

func NewUnknownProductError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownProduct,
		Message: fmt.Sprintf("Unknown product: %s", id),
	}
}

func NewInvalidAmountError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: "Invalid amount",
	}
}

func NewInvalidInputError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// NewConfigurationError names the missing settings, never their values.
func NewConfigurationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeConfiguration,
		Message: message,
	}
}

func NewAuthenticationFailedError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeAuthenticationFailed,
		Message: "Failed to authenticate with CIMB API",
		Err:     err,
	}
}

func NewPaymentCreationFailedError(status int, providerMessage string) *DomainError {
	if providerMessage == "" {
		providerMessage = "Failed to create CIMB payment"
	}
	return &DomainError{
		Code:           ErrCodePaymentCreationFailed,
		Message:        providerMessage,
		ProviderStatus: status,
	}
}

func NewPaymentProviderError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentProvider,
		Message: message,
		Err:     err,
	}
}

func NewNotFoundError() *DomainError {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: "Endpoint not found",
	}
}

func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// AsDomainError unwraps err to its DomainError, if any.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
