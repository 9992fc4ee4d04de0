package bank

import (
	"encoding/json"
	"strings"
)

type BankErrorResponse struct {
	Err              string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// providerMessage extracts the most specific message from an error body.
func providerMessage(body []byte) string {
	var bankErrResp BankErrorResponse
	if err := json.Unmarshal(body, &bankErrResp); err != nil {
		return strings.TrimSpace(string(body))
	}
	switch {
	case bankErrResp.Message != "":
		return bankErrResp.Message
	case bankErrResp.ErrorDescription != "":
		return bankErrResp.ErrorDescription
	default:
		return bankErrResp.Err
	}
}
