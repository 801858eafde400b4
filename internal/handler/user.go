package handler

import (
	"errors"
	"net/http"

	"github.com/rattananon/product-store-api/internal/handler/payload"
	"github.com/rattananon/product-store-api/internal/usecase"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	profile, err := h.users.GetProfile(r.Context(), user.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "user not found")
			return
		}

		h.respondInternal(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toUserResponse(profile))
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req payload.UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), user.Email, usecase.UpdateProfileParams{
		FullName:  req.FullName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNothingToUpdate):
			h.respondError(w, http.StatusBadRequest, "no fields to update")
		case errors.Is(err, usecase.ErrUserNotFound):
			h.respondError(w, http.StatusNotFound, "user not found")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, toUserResponse(updated))
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := h.users.DeleteAccount(r.Context(), user.Email); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "user not found")
			return
		}

		h.respondInternal(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusNoContent, nil)
}
