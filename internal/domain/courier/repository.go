package courier

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository persists couriers. Search matches the id (as text), name and
// phone case-insensitively; the other contracts follow the shared repository
// conventions (absence as (nil, nil), affected row counts on writes).
type Repository interface {
	Insert(ctx context.Context, c *Courier) error
	InsertInTx(ctx context.Context, tx pgx.Tx, c *Courier) error

	FindByID(ctx context.Context, id int64) (*Courier, error)
	FindAll(ctx context.Context) ([]*Courier, error)
	Search(ctx context.Context, pattern string) ([]*Courier, error)

	Update(ctx context.Context, c *Courier) (int64, error)
	UpdateInTx(ctx context.Context, tx pgx.Tx, c *Courier) (int64, error)

	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error)
}
