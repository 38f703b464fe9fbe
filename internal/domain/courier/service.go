package courier

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lamprea-admin/internal/pkg/apperrors"
)

type Service interface {
	CreateCourier(ctx context.Context, c *Courier) error
	GetCourier(ctx context.Context, id int64) (*Courier, error)
	ListCouriers(ctx context.Context) ([]*Courier, error)
	SearchCouriers(ctx context.Context, pattern string) ([]*Courier, error)
	UpdateCourier(ctx context.Context, c *Courier) (int64, error)
	DeleteCourier(ctx context.Context, id int64) (int64, error)
}

var _ Service = (*service)(nil)

type service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	if repo == nil {
		panic("courier repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to courier NewService, using default stderr handler")
	}
	return &service{
		repo:   repo,
		logger: logger.With(slog.String("component", "courierService")),
	}
}

func validate(c *Courier) error {
	if c == nil {
		return fmt.Errorf("%w: courier cannot be nil", apperrors.ErrInvalidArgument)
	}
	if c.ID <= 0 {
		return fmt.Errorf("%w: courier id must be positive", apperrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("name", "cannot be empty")
	}
	return nil
}

func (s *service) CreateCourier(ctx context.Context, c *Courier) error {
	if err := validate(c); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Creating courier", slog.Int64("courierID", c.ID))
	return s.repo.Insert(ctx, c)
}

func (s *service) GetCourier(ctx context.Context, id int64) (*Courier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListCouriers(ctx context.Context) ([]*Courier, error) {
	return s.repo.FindAll(ctx)
}

// SearchCouriers treats a blank pattern as list-all; the repository itself
// requires non-empty input.
func (s *service) SearchCouriers(ctx context.Context, pattern string) ([]*Courier, error) {
	if strings.TrimSpace(pattern) == "" {
		return s.repo.FindAll(ctx)
	}
	return s.repo.Search(ctx, pattern)
}

func (s *service) UpdateCourier(ctx context.Context, c *Courier) (int64, error) {
	if err := validate(c); err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "Updating courier", slog.Int64("courierID", c.ID))
	return s.repo.Update(ctx, c)
}

func (s *service) DeleteCourier(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: courier id must be positive", apperrors.ErrInvalidArgument)
	}
	s.logger.InfoContext(ctx, "Deleting courier", slog.Int64("courierID", id))
	return s.repo.DeleteByID(ctx, id)
}
