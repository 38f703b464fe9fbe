package customer

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	ret := _m.Called(ctx)

	var r0 pgx.Tx
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(pgx.Tx)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	ret := _m.Called(ctx, tx)
	return ret.Error(0)
}

func (_m *MockRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	ret := _m.Called(ctx, tx)
	return ret.Error(0)
}

func (_m *MockRepository) Insert(ctx context.Context, c *Customer) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *MockRepository) InsertInTx(ctx context.Context, tx pgx.Tx, c *Customer) error {
	ret := _m.Called(ctx, tx, c)
	return ret.Error(0)
}

func (_m *MockRepository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context) ([]*Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) Search(ctx context.Context, pattern string) ([]*Customer, error) {
	ret := _m.Called(ctx, pattern)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) Update(ctx context.Context, c *Customer) (int64, error) {
	ret := _m.Called(ctx, c)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, c *Customer) (int64, error) {
	ret := _m.Called(ctx, tx, c)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockRepository) DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error) {
	ret := _m.Called(ctx, tx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

type MockDetailsRepository struct {
	mock.Mock
}

func (_m *MockDetailsRepository) Insert(ctx context.Context, d *Details) error {
	ret := _m.Called(ctx, d)
	return ret.Error(0)
}

func (_m *MockDetailsRepository) InsertInTx(ctx context.Context, tx pgx.Tx, d *Details) error {
	ret := _m.Called(ctx, tx, d)
	return ret.Error(0)
}

func (_m *MockDetailsRepository) FindByID(ctx context.Context, id int64) (*Details, error) {
	ret := _m.Called(ctx, id)

	var r0 *Details
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Details)
	}
	return r0, ret.Error(1)
}

func (_m *MockDetailsRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (*Details, error) {
	ret := _m.Called(ctx, tx, id)

	var r0 *Details
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Details)
	}
	return r0, ret.Error(1)
}

func (_m *MockDetailsRepository) FindAll(ctx context.Context) ([]*Details, error) {
	ret := _m.Called(ctx)

	var r0 []*Details
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Details)
	}
	return r0, ret.Error(1)
}

func (_m *MockDetailsRepository) Update(ctx context.Context, d *Details) (int64, error) {
	ret := _m.Called(ctx, d)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockDetailsRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, d *Details) (int64, error) {
	ret := _m.Called(ctx, tx, d)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockDetailsRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockDetailsRepository) DeleteByIDInTx(ctx context.Context, tx pgx.Tx, id int64) (int64, error) {
	ret := _m.Called(ctx, tx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

var _ Repository = (*MockRepository)(nil)
var _ DetailsRepository = (*MockDetailsRepository)(nil)
