package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lamprea-admin/internal/pkg/apperrors"
)

type Service interface {
	CreateAgent(ctx context.Context, a *SalesAgent) error
	GetAgent(ctx context.Context, id int64) (*SalesAgent, error)
	ListAgents(ctx context.Context) ([]*SalesAgent, error)
	UpdateAgent(ctx context.Context, a *SalesAgent) (int64, error)
	DeleteAgent(ctx context.Context, id int64) (int64, error)
}

var _ Service = (*service)(nil)

type service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	if repo == nil {
		panic("agent repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to agent NewService, using default stderr handler")
	}
	return &service{
		repo:   repo,
		logger: logger.With(slog.String("component", "agentService")),
	}
}

func validate(a *SalesAgent) error {
	if a == nil {
		return fmt.Errorf("%w: agent cannot be nil", apperrors.ErrInvalidArgument)
	}
	if a.ID <= 0 {
		return fmt.Errorf("%w: agent id must be positive", apperrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(a.Name) == "" {
		return apperrors.NewValidationError("name", "cannot be empty")
	}
	if strings.TrimSpace(a.Email) == "" {
		return apperrors.NewValidationError("email", "cannot be empty")
	}
	return nil
}

func (s *service) CreateAgent(ctx context.Context, a *SalesAgent) error {
	if err := validate(a); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Creating sales agent", slog.Int64("agentID", a.ID))
	return s.repo.Insert(ctx, a)
}

func (s *service) GetAgent(ctx context.Context, id int64) (*SalesAgent, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListAgents(ctx context.Context) ([]*SalesAgent, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) UpdateAgent(ctx context.Context, a *SalesAgent) (int64, error) {
	if err := validate(a); err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "Updating sales agent", slog.Int64("agentID", a.ID))
	return s.repo.Update(ctx, a)
}

func (s *service) DeleteAgent(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: agent id must be positive", apperrors.ErrInvalidArgument)
	}
	s.logger.InfoContext(ctx, "Deleting sales agent", slog.Int64("agentID", id))
	return s.repo.DeleteByID(ctx, id)
}
