package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"lamprea-admin/internal/domain/customer"
	"lamprea-admin/internal/infrastructure/monitoring"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	insertCustomerSQL = `INSERT INTO cliente (id, nombre, email) VALUES ($1, $2, $3)`

	selectCustomerByIDSQL = `SELECT id, nombre, email FROM cliente WHERE id = $1`

	selectAllCustomersSQL = `SELECT id, nombre, email FROM cliente ORDER BY id`

	searchCustomersSQL = `
        SELECT id, nombre, email
        FROM cliente
        WHERE CAST(id AS TEXT) ILIKE $1
           OR nombre ILIKE $1
           OR email ILIKE $1
        ORDER BY id`

	updateCustomerSQL = `UPDATE cliente SET nombre = $1, email = $2 WHERE id = $3`

	deleteCustomerSQL = `DELETE FROM cliente WHERE id = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	r.logger.DebugContext(ctx, "Beginning transaction")
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrConnectivity, err)
	}
	return tx, nil
}

func (r *CustomerRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	err := tx.Commit(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to commit transaction: %w", apperrors.ErrQuery, err)
	}
	r.logger.DebugContext(ctx, "Transaction committed")
	return nil
}

func (r *CustomerRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.logger.ErrorContext(ctx, "Failed to rollback transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to rollback transaction: %w", apperrors.ErrQuery, err)
	}
	return nil
}

func (r *CustomerRepository) Insert(ctx context.Context, c *customer.Customer) error {
	return r.insert(ctx, r.db, c)
}

func (r *CustomerRepository) InsertInTx(ctx context.Context, tx pgx.Tx, c *customer.Customer) error {
	return r.insert(ctx, tx, c)
}

func (r *CustomerRepository) insert(ctx context.Context, q Querier, c *customer.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Inserting customer", slog.Int64("customerID", c.ID))

	_, err := q.Exec(ctx, insertCustomerSQL, c.ID, c.Name, c.Email)
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrDuplicateKey) {
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrQuery, err)
	}

	return nil
}

// FindByID returns (nil, nil) when no row matches; absence is not an error.
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	status := "success"
	startTime := time.Now()

	var c customer.Customer
	err := r.db.QueryRow(ctx, selectCustomerByIDSQL, id).Scan(&c.ID, &c.Name, &c.Email)

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("CustomerFindByID", status, time.Since(startTime))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to query customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrQuery, err)
	}

	return &c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx, selectAllCustomersSQL)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrQuery, err)
	}
	defer rows.Close()

	return scanCustomers(rows, r.logger)
}

// Search matches the pattern case-insensitively as a substring of the id
// (cast to text), the name or the email. The matching runs in the database,
// not in application memory.
func (r *CustomerRepository) Search(ctx context.Context, pattern string) ([]*customer.Customer, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: search pattern cannot be empty", apperrors.ErrInvalidArgument)
	}

	rows, err := r.db.Query(ctx, searchCustomersSQL, "%"+pattern+"%")
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to search customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to search customers: %w", apperrors.ErrQuery, err)
	}
	defer rows.Close()

	return scanCustomers(rows, r.logger)
}

func scanCustomers(rows pgx.Rows, logger *slog.Logger) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			logger.Error("Failed to scan customer row", "error", err)
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrQuery, err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error iterating customer rows", "error", err)
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrQuery, err)
	}

	return customers, nil
}

// Update returns the number of rows affected; 0 means the id does not exist
// and the store is unchanged.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) (int64, error) {
	return r.update(ctx, r.db, c)
}

func (r *CustomerRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, c *customer.Customer) (int64, error) {
	return r.update(ctx, tx, c)
}

func (r *CustomerRepository) update(ctx context.Context, q Querier, c *customer.Customer) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	cmdTag, err := q.Exec(ctx, updateCustomerSQL, c.Name, c.Email, c.ID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return 0, translateDBError(err, r.logger)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer not found", slog.Int64("customerID", c.ID))
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteByID returns the number of rows removed; 0 means the id did not exist.
func (r *CustomerRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return r.deleteByID(ctx, r.db, id)
}

func (r *CustomerRepository) DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error) {
	return r.deleteByID(ctx, tx, id)
}

func (r *CustomerRepository) deleteByID(ctx context.Context, q Querier, id int64) (int64, error) {
	cmdTag, err := q.Exec(ctx, deleteCustomerSQL, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete customer", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrQuery, err)
	}
	return cmdTag.RowsAffected(), nil
}
