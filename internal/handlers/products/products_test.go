package products

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/service/productservice"
	"github.com/GlebRadaev/gomarket/pkg/auth"
)

func NewMock(t *testing.T) (*ProductHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	t.Cleanup(ctrl.Finish)

	return handler, service
}

func TestCreateProductHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful creation",
			body: `{"title":"Bike","content":"Barely used","price":15000,"category_id":"cat-1","region_id":"reg-1"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateProduct(gomock.Any(), "u-1", "Bike", "Barely used", int64(15000), "cat-1", "reg-1").
					Return(&domain.Product{ID: "p-1", OwnerID: "u-1", Title: "Bike", Price: 15000}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid input",
			body: `{"title":"","price":15000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateProduct(gomock.Any(), "u-1", "", "", int64(15000), "", "").
					Return(nil, productservice.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"title":"Bike","price":15000,"category_id":"cat-1","region_id":"reg-1"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateProduct(gomock.Any(), "u-1", "Bike", "", int64(15000), "cat-1", "reg-1").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, "u-1"))
			rec := httptest.NewRecorder()

			handler.CreateProduct(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestGetProductHandler(t *testing.T) {
	handler, service := NewMock(t)

	withParam := func(req *http.Request, productID string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("productID", productID)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Product exists", func(t *testing.T) {
		service.EXPECT().GetProduct(gomock.Any(), "p-1").
			Return(&domain.Product{ID: "p-1", Title: "Bike"}, nil)

		req := withParam(httptest.NewRequest(http.MethodGet, "/api/products/p-1", nil), "p-1")
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Product not found", func(t *testing.T) {
		service.EXPECT().GetProduct(gomock.Any(), "p-404").
			Return(nil, productservice.ErrProductNotFound)

		req := withParam(httptest.NewRequest(http.MethodGet, "/api/products/p-404", nil), "p-404")
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().GetProduct(gomock.Any(), "p-1").
			Return(nil, errors.New("database error"))

		req := withParam(httptest.NewRequest(http.MethodGet, "/api/products/p-1", nil), "p-1")
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
