package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lamprea-admin/internal/domain/courier"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	insertCourierSQL = `INSERT INTO repartidor (id, nombre, telefono) VALUES ($1, $2, $3)`

	selectCourierByIDSQL = `SELECT id, nombre, telefono FROM repartidor WHERE id = $1`

	selectAllCouriersSQL = `SELECT id, nombre, telefono FROM repartidor ORDER BY id`

	searchCouriersSQL = `
        SELECT id, nombre, telefono
        FROM repartidor
        WHERE CAST(id AS TEXT) ILIKE $1
           OR nombre ILIKE $1
           OR telefono ILIKE $1
        ORDER BY id`

	updateCourierSQL = `UPDATE repartidor SET nombre = $1, telefono = $2 WHERE id = $3`

	deleteCourierSQL = `DELETE FROM repartidor WHERE id = $1`
)

// CourierRepository persists repartidor rows. The phone column is nullable
// and blank input is bound as NULL.
type CourierRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ courier.Repository = (*CourierRepository)(nil)

func NewCourierRepository(db DBPool, logger *slog.Logger) *CourierRepository {
	if db == nil {
		panic("DBPool cannot be nil for CourierRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCourierRepository, using default stderr handler")
	}
	return &CourierRepository{
		db:     db,
		logger: logger.With("component", "CourierRepository"),
	}
}

func (r *CourierRepository) Insert(ctx context.Context, c *courier.Courier) error {
	return r.insert(ctx, r.db, c)
}

func (r *CourierRepository) InsertInTx(ctx context.Context, tx pgx.Tx, c *courier.Courier) error {
	return r.insert(ctx, tx, c)
}

func (r *CourierRepository) insert(ctx context.Context, q Querier, c *courier.Courier) error {
	if c == nil {
		return fmt.Errorf("%w: courier cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Inserting courier", slog.Int64("courierID", c.ID))

	_, err := q.Exec(ctx, insertCourierSQL, c.ID, c.Name, nullIfBlank(c.Phone))
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrDuplicateKey) {
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert courier", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert courier: %w", apperrors.ErrQuery, err)
	}

	return nil
}

// FindByID returns (nil, nil) when no row matches.
func (r *CourierRepository) FindByID(ctx context.Context, id int64) (*courier.Courier, error) {
	var c courier.Courier
	err := r.db.QueryRow(ctx, selectCourierByIDSQL, id).Scan(&c.ID, &c.Name, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to query courier by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get courier by ID: %w", apperrors.ErrQuery, err)
	}
	return &c, nil
}

func (r *CourierRepository) FindAll(ctx context.Context) ([]*courier.Courier, error) {
	rows, err := r.db.Query(ctx, selectAllCouriersSQL)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query couriers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query couriers: %w", apperrors.ErrQuery, err)
	}
	defer rows.Close()

	return scanCouriers(rows, r.logger)
}

// Search matches the pattern case-insensitively as a substring of the id
// (cast to text), the name or the phone. NULL phones never match.
func (r *CourierRepository) Search(ctx context.Context, pattern string) ([]*courier.Courier, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: search pattern cannot be empty", apperrors.ErrInvalidArgument)
	}

	rows, err := r.db.Query(ctx, searchCouriersSQL, "%"+pattern+"%")
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to search couriers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to search couriers: %w", apperrors.ErrQuery, err)
	}
	defer rows.Close()

	return scanCouriers(rows, r.logger)
}

func scanCouriers(rows pgx.Rows, logger *slog.Logger) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0)
	for rows.Next() {
		var c courier.Courier
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			logger.Error("Failed to scan courier row", "error", err)
			return nil, fmt.Errorf("%w: failed to scan courier row: %w", apperrors.ErrQuery, err)
		}
		couriers = append(couriers, &c)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error iterating courier rows", "error", err)
		return nil, fmt.Errorf("%w: error iterating courier rows: %w", apperrors.ErrQuery, err)
	}

	return couriers, nil
}

func (r *CourierRepository) Update(ctx context.Context, c *courier.Courier) (int64, error) {
	return r.update(ctx, r.db, c)
}

func (r *CourierRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, c *courier.Courier) (int64, error) {
	return r.update(ctx, tx, c)
}

func (r *CourierRepository) update(ctx context.Context, q Querier, c *courier.Courier) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: courier cannot be nil", apperrors.ErrInvalidArgument)
	}

	cmdTag, err := q.Exec(ctx, updateCourierSQL, c.Name, nullIfBlank(c.Phone), c.ID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update courier", slog.Any("error", err))
		return 0, translateDBError(err, r.logger)
	}

	return cmdTag.RowsAffected(), nil
}

func (r *CourierRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return r.deleteByID(ctx, r.db, id)
}

func (r *CourierRepository) DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error) {
	return r.deleteByID(ctx, tx, id)
}

func (r *CourierRepository) deleteByID(ctx context.Context, q Querier, id int64) (int64, error) {
	cmdTag, err := q.Exec(ctx, deleteCourierSQL, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete courier", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to delete courier: %w", apperrors.ErrQuery, err)
	}
	return cmdTag.RowsAffected(), nil
}
