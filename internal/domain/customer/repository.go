package customer

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository persists customers. Every mutating operation has a self-session
// form and an InTx form that participates in a caller-owned transaction; the
// InTx forms never commit, roll back or close the transaction.
//
// FindByID reports an absent row as (nil, nil); not found is not an error.
// Update and DeleteByID return the number of rows affected, 0 meaning the id
// does not exist.
type Repository interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
	CommitTx(ctx context.Context, tx pgx.Tx) error
	RollbackTx(ctx context.Context, tx pgx.Tx) error

	Insert(ctx context.Context, c *Customer) error
	InsertInTx(ctx context.Context, tx pgx.Tx, c *Customer) error

	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindAll(ctx context.Context) ([]*Customer, error)
	Search(ctx context.Context, pattern string) ([]*Customer, error)

	Update(ctx context.Context, c *Customer) (int64, error)
	UpdateInTx(ctx context.Context, tx pgx.Tx, c *Customer) (int64, error)

	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error)
}

// DetailsRepository persists the detalle_cliente rows. FindByIDInTx exists so
// the composite update can perform its upsert lookup on the same session as
// the writes.
type DetailsRepository interface {
	Insert(ctx context.Context, d *Details) error
	InsertInTx(ctx context.Context, tx pgx.Tx, d *Details) error

	FindByID(ctx context.Context, id int64) (*Details, error)
	FindByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (*Details, error)
	FindAll(ctx context.Context) ([]*Details, error)

	Update(ctx context.Context, d *Details) (int64, error)
	UpdateInTx(ctx context.Context, tx pgx.Tx, d *Details) (int64, error)

	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error)
}
