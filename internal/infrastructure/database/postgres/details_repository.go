package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"lamprea-admin/internal/domain/customer"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	insertDetailsSQL = `INSERT INTO detalle_cliente (id, direccion, telefono, notas) VALUES ($1, $2, $3, $4)`

	selectDetailsByIDSQL = `SELECT id, direccion, telefono, notas FROM detalle_cliente WHERE id = $1`

	selectAllDetailsSQL = `SELECT id, direccion, telefono, notas FROM detalle_cliente ORDER BY id`

	updateDetailsSQL = `UPDATE detalle_cliente SET direccion = $1, telefono = $2, notas = $3 WHERE id = $4`

	deleteDetailsSQL = `DELETE FROM detalle_cliente WHERE id = $1`
)

// DetailsRepository persists the 1:1 companion rows of cliente. The id column
// is both primary key and foreign key, so inserts fail with a referential
// error when the customer row is missing.
type DetailsRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.DetailsRepository = (*DetailsRepository)(nil)

func NewDetailsRepository(db DBPool, logger *slog.Logger) *DetailsRepository {
	if db == nil {
		panic("DBPool cannot be nil for DetailsRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewDetailsRepository, using default stderr handler")
	}
	return &DetailsRepository{
		db:     db,
		logger: logger.With("component", "DetailsRepository"),
	}
}

func (r *DetailsRepository) Insert(ctx context.Context, d *customer.Details) error {
	return r.insert(ctx, r.db, d)
}

func (r *DetailsRepository) InsertInTx(ctx context.Context, tx pgx.Tx, d *customer.Details) error {
	return r.insert(ctx, tx, d)
}

func (r *DetailsRepository) insert(ctx context.Context, q Querier, d *customer.Details) error {
	if d == nil {
		return fmt.Errorf("%w: details cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Inserting customer details", slog.Int64("customerID", d.ID))

	_, err := q.Exec(ctx, insertDetailsSQL, d.ID,
		nullIfBlank(d.Address), nullIfBlank(d.Phone), nullIfBlank(d.Notes))
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrDuplicateKey) || errors.Is(translatedErr, apperrors.ErrReferential) {
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer details", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer details: %w", apperrors.ErrQuery, err)
	}

	return nil
}

// FindByID returns (nil, nil) when the customer has no details row.
func (r *DetailsRepository) FindByID(ctx context.Context, id int64) (*customer.Details, error) {
	return r.findByID(ctx, r.db, id)
}

// FindByIDInTx is the upsert lookup: the composite update must check for an
// existing row on the same session as its writes.
func (r *DetailsRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (*customer.Details, error) {
	return r.findByID(ctx, tx, id)
}

func (r *DetailsRepository) findByID(ctx context.Context, q Querier, id int64) (*customer.Details, error) {
	var d customer.Details
	err := q.QueryRow(ctx, selectDetailsByIDSQL, id).Scan(&d.ID, &d.Address, &d.Phone, &d.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to query customer details by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer details by ID: %w", apperrors.ErrQuery, err)
	}
	return &d, nil
}

func (r *DetailsRepository) FindAll(ctx context.Context) ([]*customer.Details, error) {
	rows, err := r.db.Query(ctx, selectAllDetailsSQL)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customer details", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customer details: %w", apperrors.ErrQuery, err)
	}
	defer rows.Close()

	details := make([]*customer.Details, 0)
	for rows.Next() {
		var d customer.Details
		if err := rows.Scan(&d.ID, &d.Address, &d.Phone, &d.Notes); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer details row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer details row: %w", apperrors.ErrQuery, err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer details rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer details rows: %w", apperrors.ErrQuery, err)
	}

	return details, nil
}

func (r *DetailsRepository) Update(ctx context.Context, d *customer.Details) (int64, error) {
	return r.update(ctx, r.db, d)
}

func (r *DetailsRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, d *customer.Details) (int64, error) {
	return r.update(ctx, tx, d)
}

func (r *DetailsRepository) update(ctx context.Context, q Querier, d *customer.Details) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("%w: details cannot be nil", apperrors.ErrInvalidArgument)
	}

	cmdTag, err := q.Exec(ctx, updateDetailsSQL,
		nullIfBlank(d.Address), nullIfBlank(d.Phone), nullIfBlank(d.Notes), d.ID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update customer details", slog.Any("error", err))
		return 0, translateDBError(err, r.logger)
	}

	return cmdTag.RowsAffected(), nil
}

func (r *DetailsRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return r.deleteByID(ctx, r.db, id)
}

func (r *DetailsRepository) DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error) {
	return r.deleteByID(ctx, tx, id)
}

func (r *DetailsRepository) deleteByID(ctx context.Context, q Querier, id int64) (int64, error) {
	cmdTag, err := q.Exec(ctx, deleteDetailsSQL, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete customer details", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to delete customer details: %w", apperrors.ErrQuery, err)
	}
	return cmdTag.RowsAffected(), nil
}
