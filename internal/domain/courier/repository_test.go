package courier

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Insert(ctx context.Context, c *Courier) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *MockRepository) InsertInTx(ctx context.Context, tx pgx.Tx, c *Courier) error {
	ret := _m.Called(ctx, tx, c)
	return ret.Error(0)
}

func (_m *MockRepository) FindByID(ctx context.Context, id int64) (*Courier, error) {
	ret := _m.Called(ctx, id)

	var r0 *Courier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Courier)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context) ([]*Courier, error) {
	ret := _m.Called(ctx)

	var r0 []*Courier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Courier)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) Search(ctx context.Context, pattern string) ([]*Courier, error) {
	ret := _m.Called(ctx, pattern)

	var r0 []*Courier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Courier)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) Update(ctx context.Context, c *Courier) (int64, error) {
	ret := _m.Called(ctx, c)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, c *Courier) (int64, error) {
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

var _ Repository = (*MockRepository)(nil)
