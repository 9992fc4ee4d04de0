package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/DanielPopoola/northborne-storefront/internal/application/services"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
	"github.com/DanielPopoola/northborne-storefront/internal/interfaces/rest"
)

// CartItemRequest accepts quantity as a JSON number or numeric string.
type CartItemRequest struct {
	ID       string      `json:"id" example:"apple"`
	Quantity interface{} `json:"quantity" swaggertype:"integer" example:"2"`
}

type CheckoutSessionRequest struct {
	Items []CartItemRequest `json:"items"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession builds a hosted card checkout for the posted cart
// @Summary      Create a hosted card checkout session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutSessionRequest   true  "Cart contents"
// @Success      200      {object}  CheckoutSessionResponse
// @Failure      400      {object}  rest.ErrorResponse
// @Failure      500      {object}  rest.ErrorResponse
// @Router       /create-checkout-session [post]
func (h *Handlers) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req CheckoutSessionRequest
	if err := rest.DecodeJSON(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		quantity, ok := quantityValue(item.Quantity)
		if !ok {
			rest.WriteError(w, domain.NewInvalidInputError("Invalid quantity for product: "+item.ID), h.logger)
			return
		}
		items = append(items, domain.CartItem{
			ID:       domain.ProductID(item.ID),
			Quantity: quantity,
		})
	}

	url, err := h.checkoutService.CreateSession(r.Context(), services.CreateCheckoutSessionCommand{Items: items})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondJSON(w, http.StatusOK, CheckoutSessionResponse{URL: url})
}

// quantityValue reads a whole-number quantity; a missing quantity is zero.
func quantityValue(raw interface{}) (int64, bool) {
	var text string
	switch v := raw.(type) {
	case nil:
		return 0, true
	case json.Number:
		text = v.String()
	case string:
		text = strings.TrimSpace(v)
		if text == "" {
			return 0, true
		}
	default:
		return 0, false
	}

	quantity, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return quantity, true
}
