package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"lamprea-admin/internal/api/handler/dto"
	"lamprea-admin/internal/domain/customer"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.AccountService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.AccountService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("account service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "customerID")
	if idStr == "" {
		return 0, fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerID format in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// CreateCustomer handles POST /customers. The payload carries the customer
// and its details; both rows are created in one transaction.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	c, d := req.ToDomain()
	if err := h.service.CreateCustomerWithDetails(r.Context(), c, d); err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to create customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.Int64("customerID", c.ID))
	respondJSON(w, http.StatusCreated, dto.NewCustomerFullResponse(customer.NewFullView(c, d.Normalized())))
}

// UpdateCustomer handles PUT /customers/{customerID}. The details row is
// upserted alongside the customer update.
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.SaveCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if req.ID == 0 {
		req.ID = customerID
	}
	if req.ID != customerID {
		respondError(w, fmt.Errorf("%w: payload id %d does not match URL id %d", apperrors.ErrInvalidArgument, req.ID, customerID))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	c, d := req.ToDomain()
	if err := h.service.UpdateCustomerWithDetails(r.Context(), c, d); err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to update customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", c.ID))
	respondJSON(w, http.StatusOK, dto.NewCustomerFullResponse(customer.NewFullView(c, d.Normalized())))
}

// GetCustomer handles GET /customers/{customerID}.
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	c, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if c == nil {
		respondNotFound(w, "Customer")
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(c))
}

// GetCustomerDetails handles GET /customers/{customerID}/details.
func (h *CustomerHandler) GetCustomerDetails(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	d, err := h.service.GetDetails(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get customer details", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if d == nil {
		respondNotFound(w, "Customer details")
		return
	}

	respondJSON(w, http.StatusOK, dto.NewDetailsResponse(d))
}

// ListCustomers handles GET /customers. An optional q parameter filters by a
// case-insensitive substring of the id, name or email; a blank q lists all.
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("q")

	customers, err := h.service.SearchCustomers(r.Context(), pattern)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.CustomerResponse, len(customers))
	for i, c := range customers {
		resp[i] = dto.NewCustomerResponse(c)
	}

	h.logger.InfoContext(r.Context(), "Customers listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// ListCustomersFull handles GET /customers/full, the joined read model.
func (h *CustomerHandler) ListCustomersFull(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListCustomersFull(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list full customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.CustomerFullResponse, len(views))
	for i, v := range views {
		resp[i] = dto.NewCustomerFullResponse(v)
	}

	respondJSON(w, http.StatusOK, resp)
}

// DeleteCustomer handles DELETE /customers/{customerID}. Customer and details
// rows go together; deleting an unknown id yields 404.
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	deleted, err := h.service.DeleteCustomerAndDetails(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to delete customer", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if deleted == 0 {
		respondNotFound(w, "Customer")
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
