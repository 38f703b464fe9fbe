package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"lamprea-admin/internal/domain/agent"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	insertAgentSQL = `INSERT INTO comercial (id, nombre, email) VALUES ($1, $2, $3)`

	selectAgentByIDSQL = `SELECT id, nombre, email FROM comercial WHERE id = $1`

	selectAllAgentsSQL = `SELECT id, nombre, email FROM comercial ORDER BY id`

	updateAgentSQL = `UPDATE comercial SET nombre = $1, email = $2 WHERE id = $3`

	deleteAgentSQL = `DELETE FROM comercial WHERE id = $1`
)

type AgentRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ agent.Repository = (*AgentRepository)(nil)

func NewAgentRepository(db DBPool, logger *slog.Logger) *AgentRepository {
	if db == nil {
		panic("DBPool cannot be nil for AgentRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewAgentRepository, using default stderr handler")
	}
	return &AgentRepository{
		db:     db,
		logger: logger.With("component", "AgentRepository"),
	}
}

func (r *AgentRepository) Insert(ctx context.Context, a *agent.SalesAgent) error {
	return r.insert(ctx, r.db, a)
}

func (r *AgentRepository) InsertInTx(ctx context.Context, tx pgx.Tx, a *agent.SalesAgent) error {
	return r.insert(ctx, tx, a)
}

func (r *AgentRepository) insert(ctx context.Context, q Querier, a *agent.SalesAgent) error {
	if a == nil {
		return fmt.Errorf("%w: agent cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Inserting sales agent", slog.Int64("agentID", a.ID))

	_, err := q.Exec(ctx, insertAgentSQL, a.ID, a.Name, a.Email)
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrDuplicateKey) {
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert sales agent", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert sales agent: %w", apperrors.ErrQuery, err)
	}

	return nil
}

// FindByID returns (nil, nil) when no row matches.
func (r *AgentRepository) FindByID(ctx context.Context, id int64) (*agent.SalesAgent, error) {
	var a agent.SalesAgent
	err := r.db.QueryRow(ctx, selectAgentByIDSQL, id).Scan(&a.ID, &a.Name, &a.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to query sales agent by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get sales agent by ID: %w", apperrors.ErrQuery, err)
	}
	return &a, nil
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]*agent.SalesAgent, error) {
	rows, err := r.db.Query(ctx, selectAllAgentsSQL)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query sales agents", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query sales agents: %w", apperrors.ErrQuery, err)
	}
	defer rows.Close()

	agents := make([]*agent.SalesAgent, 0)
	for rows.Next() {
		var a agent.SalesAgent
		if err := rows.Scan(&a.ID, &a.Name, &a.Email); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan sales agent row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan sales agent row: %w", apperrors.ErrQuery, err)
		}
		agents = append(agents, &a)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating sales agent rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating sales agent rows: %w", apperrors.ErrQuery, err)
	}

	return agents, nil
}

func (r *AgentRepository) Update(ctx context.Context, a *agent.SalesAgent) (int64, error) {
	return r.update(ctx, r.db, a)
}

func (r *AgentRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, a *agent.SalesAgent) (int64, error) {
	return r.update(ctx, tx, a)
}

func (r *AgentRepository) update(ctx context.Context, q Querier, a *agent.SalesAgent) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: agent cannot be nil", apperrors.ErrInvalidArgument)
	}

	cmdTag, err := q.Exec(ctx, updateAgentSQL, a.Name, a.Email, a.ID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update sales agent", slog.Any("error", err))
		return 0, translateDBError(err, r.logger)
	}

	return cmdTag.RowsAffected(), nil
}

func (r *AgentRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return r.deleteByID(ctx, r.db, id)
}

func (r *AgentRepository) DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error) {
	return r.deleteByID(ctx, tx, id)
}

func (r *AgentRepository) deleteByID(ctx context.Context, q Querier, id int64) (int64, error) {
	cmdTag, err := q.Exec(ctx, deleteAgentSQL, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete sales agent", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to delete sales agent: %w", apperrors.ErrQuery, err)
	}
	return cmdTag.RowsAffected(), nil
}
