package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/northborne-storefront/internal/application/services"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
	"github.com/DanielPopoola/northborne-storefront/internal/interfaces/rest"
)

// BankPaymentRequest accepts amount as a JSON number or string, in minor units.
type BankPaymentRequest struct {
	Amount      interface{} `json:"amount"`
	Currency    string      `json:"currency" validate:"omitempty,alpha,len=3" example:"MYR"`
	Description string      `json:"description" validate:"max=140"`
}

// CreateCimbPayment initiates a CIMB Connect payment
// @Summary      Initiate a CIMB bank payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      BankPaymentRequest  true  "Amount in minor units"
// @Success      200      {object}  services.PaymentResult
// @Failure      400      {object}  rest.ErrorResponse
// @Failure      401      {object}  rest.ErrorResponse
// @Failure      500      {object}  rest.ErrorResponse
// @Router       /create-cimb-payment [post]
func (h *Handlers) CreateCimbPayment(w http.ResponseWriter, r *http.Request) {
	var req BankPaymentRequest
	if err := rest.DecodeJSON(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("payment request failed validation", "error", err)
		rest.WriteError(w, domain.NewInvalidInputError("Invalid currency or description"), h.logger)
		return
	}

	result, err := h.bankPaymentService.CreatePayment(r.Context(), services.CreateBankPaymentCommand{
		Amount:      amountText(req.Amount),
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondJSON(w, http.StatusOK, result)
}

func amountText(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case json.Number:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
