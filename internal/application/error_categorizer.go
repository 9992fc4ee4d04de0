package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/northborne-storefront/internal/domain"
)

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if domainErr, ok := domain.AsDomainError(err); ok {
		switch domainErr.Code {
		case domain.ErrCodeEmptyCart,
			domain.ErrCodeUnknownProduct,
			domain.ErrCodeInvalidAmount,
			domain.ErrCodeInvalidInput:
			return http.StatusBadRequest
		case domain.ErrCodeAuthenticationFailed:
			return http.StatusUnauthorized
		case domain.ErrCodeNotFound:
			return http.StatusNotFound
		case domain.ErrCodePaymentCreationFailed:
			if domainErr.ProviderStatus >= http.StatusBadRequest {
				return domainErr.ProviderStatus
			}
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorMessage returns the text safe to show the caller. Errors outside the
// taxonomy are reduced to a generic message.
func ToErrorMessage(err error) string {
	if domainErr, ok := domain.AsDomainError(err); ok {
		return domainErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timeout"
	}
	return "An internal error occurred"
}
