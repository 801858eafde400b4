// Package handler is the thin HTTP layer: it parses and validates payloads,
// invokes the usecases, and maps their outcomes to transport responses.
// Authentication failures are deliberately generic at this boundary.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rattananon/product-store-api/internal/usecase"
	"github.com/rattananon/product-store-api/internal/validate"
)

// Handler bundles the usecases behind the HTTP routes.
type Handler struct {
	auth      usecase.AuthUsecase
	users     usecase.UserUsecase
	products  usecase.ProductUsecase
	validator *validate.Validator
	logger    *zerolog.Logger
}

// New creates a Handler.
func New(
	auth usecase.AuthUsecase,
	users usecase.UserUsecase,
	products usecase.ProductUsecase,
	validator *validate.Validator,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		products:  products,
		validator: validator,
		logger:    logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{Error: message})
}

// respondInternal hides infrastructure failures behind a generic message; the
// precise cause goes to the log only.
func (h *Handler) respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	h.respondError(w, http.StatusInternalServerError, "something went wrong")
}

// decode parses the JSON body into v and validates it. On failure it writes a
// 400 response and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validator.Struct(v); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
