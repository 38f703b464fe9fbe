package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"lamprea-admin/internal/api/handler/dto"
	"lamprea-admin/internal/domain/agent"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type AgentHandler struct {
	service agent.Service
	logger  *slog.Logger
}

func NewAgentHandler(s agent.Service, l *slog.Logger) *AgentHandler {
	if s == nil {
		panic("agent service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &AgentHandler{
		service: s,
		logger:  l.With("component", "AgentHandler"),
	}
}

func getAgentIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "agentID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid agentID in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

func (h *AgentHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveAgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	a := req.ToDomain()
	if err := h.service.CreateAgent(r.Context(), a); err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to create agent", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Sales agent created successfully", slog.Int64("agentID", a.ID))
	respondJSON(w, http.StatusCreated, dto.NewAgentResponse(a))
}

func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := getAgentIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	a, err := h.service.GetAgent(r.Context(), agentID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get agent", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if a == nil {
		respondNotFound(w, "Sales agent")
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAgentResponse(a))
}

func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.service.ListAgents(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list agents", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.AgentResponse, len(agents))
	for i, a := range agents {
		resp[i] = dto.NewAgentResponse(a)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AgentHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := getAgentIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.SaveAgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	req.ID = agentID
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	a := req.ToDomain()
	affected, err := h.service.UpdateAgent(r.Context(), a)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to update agent", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if affected == 0 {
		respondNotFound(w, "Sales agent")
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAgentResponse(a))
}

func (h *AgentHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := getAgentIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	deleted, err := h.service.DeleteAgent(r.Context(), agentID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to delete agent", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if deleted == 0 {
		respondNotFound(w, "Sales agent")
		return
	}

	respondJSON(w, http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
