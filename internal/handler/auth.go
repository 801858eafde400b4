package handler

import (
	"errors"
	"net/http"

	"github.com/rattananon/product-store-api/internal/handler/payload"
	"github.com/rattananon/product-store-api/internal/model"
	"github.com/rattananon/product-store-api/internal/usecase"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.auth.Register(r.Context(), usecase.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Bio:      req.Bio,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			h.respondError(w, http.StatusBadRequest, "user already exists or invalid data")
			return
		}

		h.respondInternal(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.auth.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		h.respondInternal(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, payload.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *Handler) generateOTP(w http.ResponseWriter, r *http.Request) {
	var req payload.OTPGenerateRequest
	if !h.decode(w, r, &req) {
		return
	}

	// The code is delivered out-of-band and never included in the response.
	_, err := h.auth.GenerateOTP(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			h.respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrRateLimited):
			h.respondError(w, http.StatusTooManyRequests, "too many requests")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	h.respondJSON(w, http.StatusAccepted, map[string]string{"message": "otp sent"})
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req payload.OTPVerifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.auth.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, usecase.ErrOTPInvalidOrExpired):
			h.respondError(w, http.StatusUnauthorized, "invalid or expired otp")
		case errors.Is(err, usecase.ErrRateLimited):
			h.respondError(w, http.StatusTooManyRequests, "too many requests")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"verified": true})
}

func toUserResponse(user *model.User) payload.UserResponse {
	return payload.UserResponse{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		FullName:  user.FullName,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
	}
}
