package agent

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository persists sales agents. Mutating operations exist in a
// self-session form and an InTx form; FindByID reports absence as (nil, nil)
// and Update/DeleteByID return the affected row count, 0 meaning not found.
type Repository interface {
	Insert(ctx context.Context, a *SalesAgent) error
	InsertInTx(ctx context.Context, tx pgx.Tx, a *SalesAgent) error

	FindByID(ctx context.Context, id int64) (*SalesAgent, error)
	FindAll(ctx context.Context) ([]*SalesAgent, error)

	Update(ctx context.Context, a *SalesAgent) (int64, error)
	UpdateInTx(ctx context.Context, tx pgx.Tx, a *SalesAgent) (int64, error)

	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error)
}
