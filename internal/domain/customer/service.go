package customer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"lamprea-admin/internal/event"
	"lamprea-admin/internal/pkg/apperrors"
)

// AccountService is the composite boundary for customer master data. The
// three mutating operations each run on a single explicit-commit session:
// either every row change in the call commits, or none of them do.
type AccountService interface {
	CreateCustomerWithDetails(ctx context.Context, c *Customer, d *Details) error
	UpdateCustomerWithDetails(ctx context.Context, c *Customer, d *Details) error
	DeleteCustomerAndDetails(ctx context.Context, id int64) (int64, error)

	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	GetDetails(ctx context.Context, id int64) (*Details, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	SearchCustomers(ctx context.Context, pattern string) ([]*Customer, error)
	ListCustomersFull(ctx context.Context) ([]FullView, error)
}

var _ AccountService = (*accountService)(nil)

type accountService struct {
	customers Repository
	details   DetailsRepository
	pub       event.Publisher
	logger    *slog.Logger
}

func NewAccountService(customers Repository, details DetailsRepository, pub event.Publisher, logger *slog.Logger) AccountService {
	if customers == nil || details == nil {
		panic("customer repositories cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewAccountService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NoopPublisher{}
	}
	return &accountService{
		customers: customers,
		details:   details,
		pub:       pub,
		logger:    logger.With(slog.String("component", "accountService")),
	}
}

func validateCustomer(c *Customer) error {
	if c == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	if c.ID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", apperrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("name", "cannot be empty")
	}
	if strings.TrimSpace(c.Email) == "" {
		return apperrors.NewValidationError("email", "cannot be empty")
	}
	return nil
}

func validatePair(c *Customer, d *Details) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: customer details cannot be nil", apperrors.ErrInvalidArgument)
	}
	if d.ID != c.ID {
		return fmt.Errorf("%w: details id %d does not match customer id %d", apperrors.ErrInvalidArgument, d.ID, c.ID)
	}
	return nil
}

// CreateCustomerWithDetails inserts the customer row and its details row in
// one transaction. On any failure both inserts are rolled back and the cause
// is surfaced wrapped in ErrPersistence.
func (s *accountService) CreateCustomerWithDetails(ctx context.Context, c *Customer, d *Details) error {
	if err := validatePair(c, d); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Creating customer with details", slog.Int64("customerID", c.ID))

	tx, err := s.customers.BeginTx(ctx)
	if err != nil {
		return err
	}
	// No-op once the transaction committed; on every other exit path this
	// undoes the provisional writes and releases the session.
	defer func() {
		if rbErr := s.customers.RollbackTx(ctx, tx); rbErr != nil {
			s.logger.ErrorContext(ctx, "Deferred rollback failed", slog.Any("error", rbErr))
		}
	}()

	if err := s.customers.InsertInTx(ctx, tx, c); err != nil {
		s.logger.ErrorContext(ctx, "Customer insert failed, rolling back", slog.Any("error", err))
		return apperrors.WrapPersistenceError(err, "create customer with details failed")
	}
	if err := s.details.InsertInTx(ctx, tx, d.Normalized()); err != nil {
		s.logger.ErrorContext(ctx, "Details insert failed, rolling back", slog.Any("error", err))
		return apperrors.WrapPersistenceError(err, "create customer with details failed")
	}

	if err := s.customers.CommitTx(ctx, tx); err != nil {
		return apperrors.WrapPersistenceError(err, "create customer with details failed")
	}

	s.logger.InfoContext(ctx, "Customer and details created", slog.Int64("customerID", c.ID))
	s.publishCreated(ctx, c, d)
	return nil
}

// UpdateCustomerWithDetails updates the customer row and upserts the details
// row on the same transaction: the details row appears automatically the
// first time details are entered for an existing customer.
//
// A customer update affecting zero rows is not an error here; the caller is
// expected to have validated existence beforehand.
func (s *accountService) UpdateCustomerWithDetails(ctx context.Context, c *Customer, d *Details) error {
	if err := validatePair(c, d); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Updating customer with details", slog.Int64("customerID", c.ID))

	tx, err := s.customers.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.customers.RollbackTx(ctx, tx); rbErr != nil {
			s.logger.ErrorContext(ctx, "Deferred rollback failed", slog.Any("error", rbErr))
		}
	}()

	if _, err := s.customers.UpdateInTx(ctx, tx, c); err != nil {
		s.logger.ErrorContext(ctx, "Customer update failed, rolling back", slog.Any("error", err))
		return apperrors.WrapPersistenceError(err, "update customer with details failed")
	}

	existing, err := s.details.FindByIDInTx(ctx, tx, c.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Details lookup failed, rolling back", slog.Any("error", err))
		return apperrors.WrapPersistenceError(err, "update customer with details failed")
	}

	normalized := d.Normalized()
	if existing == nil {
		err = s.details.InsertInTx(ctx, tx, normalized)
	} else {
		_, err = s.details.UpdateInTx(ctx, tx, normalized)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Details upsert failed, rolling back", slog.Any("error", err))
		return apperrors.WrapPersistenceError(err, "update customer with details failed")
	}

	if err := s.customers.CommitTx(ctx, tx); err != nil {
		return apperrors.WrapPersistenceError(err, "update customer with details failed")
	}

	s.logger.InfoContext(ctx, "Customer and details updated", slog.Int64("customerID", c.ID))
	s.publishUpdated(ctx, c, d)
	return nil
}

// DeleteCustomerAndDetails removes the details row and the customer row on
// the same transaction. It returns 0 when neither row existed, otherwise the
// number of customer rows removed.
func (s *accountService) DeleteCustomerAndDetails(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: customer id must be positive", apperrors.ErrInvalidArgument)
	}

	s.logger.InfoContext(ctx, "Deleting customer and details", slog.Int64("customerID", id))

	tx, err := s.customers.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rbErr := s.customers.RollbackTx(ctx, tx); rbErr != nil {
			s.logger.ErrorContext(ctx, "Deferred rollback failed", slog.Any("error", rbErr))
		}
	}()

	detailsDeleted, err := s.details.DeleteByIDInTx(ctx, tx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Details delete failed, rolling back", slog.Any("error", err))
		return 0, apperrors.WrapPersistenceError(err, "delete customer and details failed")
	}

	customersDeleted, err := s.customers.DeleteByIDInTx(ctx, tx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Customer delete failed, rolling back", slog.Any("error", err))
		return 0, apperrors.WrapPersistenceError(err, "delete customer and details failed")
	}

	if err := s.customers.CommitTx(ctx, tx); err != nil {
		return 0, apperrors.WrapPersistenceError(err, "delete customer and details failed")
	}

	if detailsDeleted == 0 && customersDeleted == 0 {
		s.logger.InfoContext(ctx, "Nothing to delete", slog.Int64("customerID", id))
		return 0, nil
	}

	s.logger.InfoContext(ctx, "Customer and details deleted",
		slog.Int64("customerID", id),
		slog.Int64("customerRows", customersDeleted),
		slog.Int64("detailRows", detailsDeleted))
	s.publishDeleted(ctx, id)
	return customersDeleted, nil
}

func (s *accountService) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *accountService) GetDetails(ctx context.Context, id int64) (*Details, error) {
	return s.details.FindByID(ctx, id)
}

func (s *accountService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.customers.FindAll(ctx)
}

// SearchCustomers treats a blank pattern as list-all; the repository itself
// requires non-empty input.
func (s *accountService) SearchCustomers(ctx context.Context, pattern string) ([]*Customer, error) {
	if strings.TrimSpace(pattern) == "" {
		return s.customers.FindAll(ctx)
	}
	return s.customers.Search(ctx, pattern)
}

// ListCustomersFull returns the joined view for every customer that has a
// details row, in customer iteration order. Snapshot-at-read-time only; the
// two reads are not transactional.
func (s *accountService) ListCustomersFull(ctx context.Context) ([]FullView, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	details, err := s.details.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*Details, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}

	out := make([]FullView, 0, len(customers))
	for _, c := range customers {
		if d, ok := byID[c.ID]; ok {
			out = append(out, NewFullView(c, d))
		}
	}
	return out, nil
}

func (s *accountService) publishCreated(ctx context.Context, c *Customer, d *Details) {
	ev := event.CustomerCreatedEvent{Timestamp: time.Now(), Payload: newEventPayload(c, d)}
	if err := s.pub.PublishCustomerCreated(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer created event", slog.Any("error", err))
	}
}

func (s *accountService) publishUpdated(ctx context.Context, c *Customer, d *Details) {
	ev := event.CustomerUpdatedEvent{Timestamp: time.Now(), Payload: newEventPayload(c, d)}
	if err := s.pub.PublishCustomerUpdated(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer updated event", slog.Any("error", err))
	}
}

func (s *accountService) publishDeleted(ctx context.Context, id int64) {
	ev := event.CustomerDeletedEvent{Timestamp: time.Now(), CustomerID: id}
	if err := s.pub.PublishCustomerDeleted(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer deleted event", slog.Any("error", err))
	}
}

func newEventPayload(c *Customer, d *Details) event.CustomerEventPayload {
	p := event.CustomerEventPayload{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
	if d != nil {
		n := d.Normalized()
		p.Address = n.Address
		p.Phone = n.Phone
		p.Notes = n.Notes
	}
	return p
}
