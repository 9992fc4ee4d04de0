package handlers

import (
	"net/http"

	"github.com/DanielPopoola/northborne-storefront/internal/interfaces/rest"
)

type HealthResponse struct {
	Status string `json:"status"`
	Server string `json:"server"`
}

// Health never consults provider configuration.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.RespondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Server: h.serverName,
	})
}

func (h *Handlers) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.openAPIDoc)
}
