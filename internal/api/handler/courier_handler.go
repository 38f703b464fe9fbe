package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"lamprea-admin/internal/api/handler/dto"
	"lamprea-admin/internal/domain/courier"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CourierHandler struct {
	service courier.Service
	logger  *slog.Logger
}

func NewCourierHandler(s courier.Service, l *slog.Logger) *CourierHandler {
	if s == nil {
		panic("courier service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CourierHandler{
		service: s,
		logger:  l.With("component", "CourierHandler"),
	}
}

func getCourierIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "courierID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid courierID in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

func (h *CourierHandler) CreateCourier(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveCourierRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	c := req.ToDomain()
	if err := h.service.CreateCourier(r.Context(), c); err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to create courier", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Courier created successfully", slog.Int64("courierID", c.ID))
	respondJSON(w, http.StatusCreated, dto.NewCourierResponse(c))
}

func (h *CourierHandler) GetCourier(w http.ResponseWriter, r *http.Request) {
	courierID, err := getCourierIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	c, err := h.service.GetCourier(r.Context(), courierID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get courier", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if c == nil {
		respondNotFound(w, "Courier")
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCourierResponse(c))
}

// ListCouriers handles GET /couriers. An optional q parameter filters by a
// case-insensitive substring of the id, name or phone.
func (h *CourierHandler) ListCouriers(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("q")

	couriers, err := h.service.SearchCouriers(r.Context(), pattern)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list couriers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.CourierResponse, len(couriers))
	for i, c := range couriers {
		resp[i] = dto.NewCourierResponse(c)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CourierHandler) UpdateCourier(w http.ResponseWriter, r *http.Request) {
	courierID, err := getCourierIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.SaveCourierRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	req.ID = courierID
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	c := req.ToDomain()
	affected, err := h.service.UpdateCourier(r.Context(), c)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to update courier", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if affected == 0 {
		respondNotFound(w, "Courier")
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCourierResponse(c))
}

func (h *CourierHandler) DeleteCourier(w http.ResponseWriter, r *http.Request) {
	courierID, err := getCourierIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	deleted, err := h.service.DeleteCourier(r.Context(), courierID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to delete courier", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if deleted == 0 {
		respondNotFound(w, "Courier")
		return
	}

	respondJSON(w, http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
