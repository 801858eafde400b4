package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rattananon/product-store-api/internal/handler/payload"
	"github.com/rattananon/product-store-api/internal/model"
	"github.com/rattananon/product-store-api/internal/usecase"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	skip := parseUintQuery(r, "skip", 0)
	limit := parseUintQuery(r, "limit", 100)

	products, err := h.products.ListProducts(r.Context(), skip, limit)
	if err != nil {
		h.respondInternal(w, r, err)
		return
	}

	out := make([]payload.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	h.respondJSON(w, http.StatusOK, out)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}

		h.respondInternal(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req payload.CreateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.products.CreateProduct(r.Context(), user.Email, usecase.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		InStock:     req.InStock,
		Category:    req.Category,
	})
	if err != nil {
		h.respondInternal(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req payload.UpdateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.products.UpdateProduct(r.Context(), user.Email, chi.URLParam(r, "productID"), usecase.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		InStock:     req.InStock,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			h.respondError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, usecase.ErrNothingToUpdate):
			h.respondError(w, http.StatusBadRequest, "no fields to update")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := h.products.DeleteProduct(r.Context(), user.Email, chi.URLParam(r, "productID")); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}

		h.respondInternal(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusNoContent, nil)
}

func toProductResponse(product *model.Product) payload.ProductResponse {
	return payload.ProductResponse{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		InStock:     product.InStock,
		Category:    product.Category,
	}
}

func parseUintQuery(r *http.Request, name string, fallback uint64) uint64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback
	}

	return value
}
