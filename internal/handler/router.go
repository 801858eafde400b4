package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts all routes. Product reads are public; profile routes and
// catalog mutations require a bearer token.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(h.logger))

	r.Get("/healthz", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/otp/generate", h.generateOTP)
		r.Post("/otp/verify", h.verifyOTP)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/me", h.getProfile)
		r.Put("/me", h.updateProfile)
		r.Delete("/me", h.deleteAccount)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/{productID}", h.getProduct)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/", h.createProduct)
			r.Put("/{productID}", h.updateProduct)
			r.Delete("/{productID}", h.deleteProduct)
		})
	})

	return r
}
