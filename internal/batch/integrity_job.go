package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lamprea-admin/internal/domain/customer"
	"lamprea-admin/internal/infrastructure/monitoring"
)

// CustomerSource is the read surface the sweep needs from the customer store.
type CustomerSource interface {
	FindAll(ctx context.Context) ([]*customer.Customer, error)
}

// DetailsSource is the read surface the sweep needs from the details store.
type DetailsSource interface {
	FindAll(ctx context.Context) ([]*customer.Details, error)
}

// IntegritySweepJob scans detalle_cliente for rows whose customer no longer
// exists. The schema's foreign key should make orphans impossible; the sweep
// is there to notice when the constraint has been dropped or bypassed.
type IntegritySweepJob struct {
	customers CustomerSource
	details   DetailsSource
	logger    *slog.Logger
}

func NewIntegritySweepJob(customers CustomerSource, details DetailsSource, logger *slog.Logger) *IntegritySweepJob {
	if customers == nil || details == nil || logger == nil {
		panic("IntegritySweepJob dependencies cannot be nil")
	}
	return &IntegritySweepJob{
		customers: customers,
		details:   details,
		logger:    logger.With("job", "IntegritySweep"),
	}
}

// Run reports the sweep result; it never mutates data.
func (j *IntegritySweepJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting referential integrity sweep.")

	customers, err := j.customers.FindAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list customers, aborting sweep.", slog.Any("error", err))
		return fmt.Errorf("cannot run sweep, failed to list customers: %w", err)
	}

	details, err := j.details.FindAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list customer details, aborting sweep.", slog.Any("error", err))
		return fmt.Errorf("cannot run sweep, failed to list details: %w", err)
	}

	known := make(map[int64]struct{}, len(customers))
	for _, c := range customers {
		known[c.ID] = struct{}{}
	}

	var orphaned int
	for _, d := range details {
		if _, ok := known[d.ID]; !ok {
			orphaned++
			j.logger.WarnContext(ctx, "Found orphaned details row", slog.Int64("detailsID", d.ID))
		}
	}

	monitoring.Integrity.OrphanedDetails.Set(float64(orphaned))
	monitoring.Integrity.SweepsTotal.Inc()

	j.logger.InfoContext(ctx, "Referential integrity sweep finished.",
		slog.Int("customers", len(customers)),
		slog.Int("detailRows", len(details)),
		slog.Int("orphaned", orphaned),
		slog.Duration("duration", time.Since(startTime)))
	return nil
}
