package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lamprea-admin/internal/api/handler"
	"lamprea-admin/internal/api/handler/dto"
	"lamprea-admin/internal/domain/customer"
	"lamprea-admin/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (_m *MockAccountService) CreateCustomerWithDetails(ctx context.Context, c *customer.Customer, d *customer.Details) error {
	ret := _m.Called(ctx, c, d)
	return ret.Error(0)
}

func (_m *MockAccountService) UpdateCustomerWithDetails(ctx context.Context, c *customer.Customer, d *customer.Details) error {
	ret := _m.Called(ctx, c, d)
	return ret.Error(0)
}

func (_m *MockAccountService) DeleteCustomerAndDetails(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockAccountService) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockAccountService) GetDetails(ctx context.Context, id int64) (*customer.Details, error) {
	ret := _m.Called(ctx, id)

	var r0 *customer.Details
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Details)
	}
	return r0, ret.Error(1)
}

func (_m *MockAccountService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockAccountService) SearchCustomers(ctx context.Context, pattern string) ([]*customer.Customer, error) {
	ret := _m.Called(ctx, pattern)

	var r0 []*customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockAccountService) ListCustomersFull(ctx context.Context) ([]customer.FullView, error) {
	ret := _m.Called(ctx)

	var r0 []customer.FullView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]customer.FullView)
	}
	return r0, ret.Error(1)
}

var _ customer.AccountService = (*MockAccountService)(nil)

func setupCustomerHandler() (*MockAccountService, *chi.Mux) {
	mockSvc := new(MockAccountService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewCustomerHandler(mockSvc, logger)

	router := chi.NewRouter()
	router.Post("/customers", h.CreateCustomer)
	router.Get("/customers", h.ListCustomers)
	router.Get("/customers/full", h.ListCustomersFull)
	router.Get("/customers/{customerID}", h.GetCustomer)
	router.Put("/customers/{customerID}", h.UpdateCustomer)
	router.Delete("/customers/{customerID}", h.DeleteCustomer)
	router.Get("/customers/{customerID}/details", h.GetCustomerDetails)
	return mockSvc, router
}

func strPtr(s string) *string { return &s }

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("CreateCustomerWithDetails", mock.Anything,
			&customer.Customer{ID: 7, Name: "Paco Lamprea", Email: "paco@lamprea.es"},
			&customer.Details{ID: 7, Address: strPtr("Calle Mayor 3")},
		).Return(nil).Once()

		body, _ := json.Marshal(dto.SaveCustomerRequest{
			ID: 7, Name: "Paco Lamprea", Email: "paco@lamprea.es", Address: strPtr("Calle Mayor 3"),
		})
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.CustomerFullResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Calle Mayor 3", *resp.Address)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Error - Missing Name", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		body, _ := json.Marshal(dto.SaveCustomerRequest{ID: 7, Email: "paco@lamprea.es"})
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "CreateCustomerWithDetails", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error - Duplicate Key Maps To Conflict", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("CreateCustomerWithDetails", mock.Anything, mock.Anything, mock.Anything).
			Return(apperrors.ErrDuplicateKey).Once()

		body, _ := json.Marshal(dto.SaveCustomerRequest{ID: 7, Name: "Paco Lamprea", Email: "paco@lamprea.es"})
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("GetCustomer", mock.Anything, int64(7)).
			Return(&customer.Customer{ID: 7, Name: "Paco Lamprea", Email: "paco@lamprea.es"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/customers/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Paco Lamprea", resp.Name)
	})

	t.Run("Absent Maps To 404", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("GetCustomer", mock.Anything, int64(7)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/customers/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error - Invalid ID", func(t *testing.T) {
		_, router := setupCustomerHandler()

		req := httptest.NewRequest(http.MethodGet, "/customers/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	t.Run("Search Parameter Is Forwarded", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("SearchCustomers", mock.Anything, "lam").
			Return([]*customer.Customer{{ID: 7, Name: "Paco Lamprea", Email: "paco@lamprea.es"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/customers?q=lam", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("No Parameter Lists All", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("SearchCustomers", mock.Anything, "").
			Return([]*customer.Customer{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestCustomerHandler_UpdateCustomer(t *testing.T) {
	t.Run("Error - Payload ID Mismatch", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		body, _ := json.Marshal(dto.SaveCustomerRequest{ID: 8, Name: "Paco Lamprea", Email: "paco@lamprea.es"})
		req := httptest.NewRequest(http.MethodPut, "/customers/7", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "UpdateCustomerWithDetails", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Payload Without ID Takes URL ID", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("UpdateCustomerWithDetails", mock.Anything,
			&customer.Customer{ID: 7, Name: "Paco Lamprea", Email: "paco@lamprea.es"},
			mock.Anything,
		).Return(nil).Once()

		body, _ := json.Marshal(dto.SaveCustomerRequest{Name: "Paco Lamprea", Email: "paco@lamprea.es"})
		req := httptest.NewRequest(http.MethodPut, "/customers/7", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("DeleteCustomerAndDetails", mock.Anything, int64(7)).Return(int64(1), nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/customers/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deleted":1}`, rec.Body.String())
	})

	t.Run("Persistence Failure Hides Internal Code", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("DeleteCustomerAndDetails", mock.Anything, int64(7)).
			Return(int64(0), apperrors.WrapPersistenceError(errors.New("commit failed"), "delete customer and details failed")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/customers/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "TX_ROLLBACK")
		assert.NotContains(t, rec.Body.String(), "commit failed")
	})

	t.Run("Nothing Deleted Maps To 404", func(t *testing.T) {
		mockSvc, router := setupCustomerHandler()

		mockSvc.On("DeleteCustomerAndDetails", mock.Anything, int64(7)).Return(int64(0), nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/customers/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCustomerHandler_ListCustomersFull(t *testing.T) {
	mockSvc, router := setupCustomerHandler()

	mockSvc.On("ListCustomersFull", mock.Anything).
		Return([]customer.FullView{{ID: 7, Name: "Paco Lamprea", Email: "paco@lamprea.es", Notes: strPtr("vip")}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/customers/full", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.CustomerFullResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "vip", *resp[0].Notes)
}
