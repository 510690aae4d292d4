// Package http serves the sizing engine over a small JSON API.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/vladmu/tire-calculator/internal/service"
)

const maxBodyBytes = 1 << 10

type SizingHandler struct {
	service *service.SizingService
}

func NewSizingHandler(service *service.SizingService) *SizingHandler {
	return &SizingHandler{service: service}
}

// Calculate handles POST /sizes/calculate with a body such as
// {"rim":17,"width":225,"profile":45}.
func (h *SizingHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var input model.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}

// Limits handles GET /sizes/limits.
func (h *SizingHandler) Limits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.service.Limits())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// NewRouter registers every endpoint behind the rate limiter.
func NewRouter(h *SizingHandler, limiter *RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/sizes/calculate", RateLimitMiddleware(limiter, http.HandlerFunc(h.Calculate)))
	mux.Handle("/sizes/limits", RateLimitMiddleware(limiter, http.HandlerFunc(h.Limits)))
	return mux
}
