package postgres

import (
	"context"
	"regexp"
	"testing"

	"lamprea-admin/internal/domain/courier"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func setupCourierRepo(t *testing.T) (context.Context, *CourierRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCourierRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestInsertCourierBindsBlankPhoneAsNull(t *testing.T) {
	ctx, repo, mockPool := setupCourierRepo(t)
	defer mockPool.Close()

	c := &courier.Courier{ID: 3, Name: "Raul Mena", Phone: strPtr("  ")}

	mockPool.ExpectExec(regexp.QuoteMeta(insertCourierSQL)).
		WithArgs(c.ID, c.Name, (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Insert(ctx, c)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCourierByIDReturnOneWithNullPhone(t *testing.T) {
	ctx, repo, mockPool := setupCourierRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(selectCourierByIDSQL)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "nombre", "telefono"}).
			AddRow(int64(3), "Raul Mena", (*string)(nil)))

	result, err := repo.FindByID(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Raul Mena", result.Name)
	assert.Nil(t, result.Phone)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCourierByIDReturnNone(t *testing.T) {
	ctx, repo, mockPool := setupCourierRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(selectCourierByIDSQL)).
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.FindByID(ctx, 3)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSearchCouriersBindsWildcardPattern(t *testing.T) {
	ctx, repo, mockPool := setupCourierRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(searchCouriersSQL)).
		WithArgs("%600%").
		WillReturnRows(pgxmock.NewRows([]string{"id", "nombre", "telefono"}).
			AddRow(int64(3), "Raul Mena", strPtr("600333444")))

	result, err := repo.Search(ctx, "600")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "600333444", *result[0].Phone)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSearchCouriersRejectsBlankPattern(t *testing.T) {
	ctx, repo, mockPool := setupCourierRepo(t)
	defer mockPool.Close()

	result, err := repo.Search(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Nil(t, result)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestUpdateCourierReturnsAffectedRows(t *testing.T) {
	ctx, repo, mockPool := setupCourierRepo(t)
	defer mockPool.Close()

	c := &courier.Courier{ID: 3, Name: "Raul Mena", Phone: strPtr("600333444")}

	mockPool.ExpectExec(regexp.QuoteMeta(updateCourierSQL)).
		WithArgs(c.Name, c.Phone, c.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := repo.Update(ctx, c)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCourierMissingReturnsZero(t *testing.T) {
	ctx, repo, mockPool := setupCourierRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(deleteCourierSQL)).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	affected, err := repo.DeleteByID(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
