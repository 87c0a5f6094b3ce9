// Package rest provides HTTP handlers for catalog operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/nvoronin/gocatalog/internal/catalog/errs"
	"github.com/nvoronin/gocatalog/internal/catalog/service"
	"github.com/nvoronin/gocatalog/pkg/web"
)

type Handler struct {
	service  service.CatalogService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new catalog API handler with the provided service.
func NewHandler(service service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Delete("/", h.DeleteByID)
			r.Put("/price", h.ChangePrice)
			r.Post("/discount", h.Discount)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindAll lists all products, or only those matching the q query parameter.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	if term := r.URL.Query().Get("q"); term != "" {
		mLogger.Debug("Received request to search products", "term", term)
		web.RespondJSON(w, mLogger, http.StatusOK, h.service.Search(term))
		return
	}
	list := h.service.FindAll()
	mLogger.Debug("Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindByID(id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			mLogger.Warn("Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.Error("Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var createDto service.ProductCreateDto
	if !h.decodeAndValidate(w, r, mLogger, &createDto) {
		return
	}

	created, err := h.service.Create(createDto)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			mLogger.Warn("Product rejected by domain validation", "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
			return
		}
		mLogger.Error("Error creating product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	mLogger.Debug("Successfully created product", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// ChangePrice sets a new price on a product.
func (h *Handler) ChangePrice(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var priceDto service.PriceUpdateDto
	if !h.decodeAndValidate(w, r, mLogger, &priceDto) {
		return
	}

	updated, err := h.service.ChangePrice(id, priceDto.Price)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// Discount applies a percentage discount to a product.
func (h *Handler) Discount(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var discountDto service.DiscountDto
	if !h.decodeAndValidate(w, r, mLogger, &discountDto) {
		return
	}

	updated, err := h.service.Discount(id, discountDto.Percent)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(id); err != nil {
		h.respondServiceError(w, r, mLogger, err, id)
		return
	}
	mLogger.Debug("Successfully deleted product", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, h.loggerWithReqID(r), http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate decodes the JSON body into dst and validates it.
// Responds with 400 and returns false on any failure.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		mLogger.Error("Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.Warn("Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.Error("Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// respondServiceError maps service error kinds to HTTP statuses.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error, id string) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		mLogger.Warn("Product not found", "ID", id)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
	case errors.Is(err, errs.ErrValidation):
		mLogger.Warn("Request rejected by domain validation", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
	default:
		mLogger.Error("Error handling product request", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Internal server error")
	}
}

// loggerWithReqID returns the handler logger enriched with the request id.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	if reqID, ok := web.GetRequestID(r.Context()); ok {
		return h.logger.With("request_id", reqID)
	}
	return h.logger
}
