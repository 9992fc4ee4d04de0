package application

import (
	"errors"
	"fmt"
)

// ProviderError is a non-success answer from an upstream payment provider.
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s failed: %s (status: %d)", e.Provider, e.Operation, e.Message, e.StatusCode)
}

func IsProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	ok := errors.As(err, &providerErr)
	return providerErr, ok
}
