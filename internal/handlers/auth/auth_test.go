package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	t.Cleanup(ctrl.Finish)

	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"login":"gopher","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "gopher", "password123").
					Return(&domain.User{ID: "u-1", Login: "gopher"}, nil)
				service.EXPECT().
					GenerateToken("u-1").
					Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"gopher","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "gopher", "password123").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"login":"gopher","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "gopher", "password123").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Token generation fails",
			body: `{"login":"gopher","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "gopher", "password123").
					Return(&domain.User{ID: "u-1", Login: "gopher"}, nil)
				service.EXPECT().
					GenerateToken("u-1").
					Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"login":"gopher","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "gopher", "password123").
					Return(&domain.User{ID: "u-1", Login: "gopher"}, nil)
				service.EXPECT().
					GenerateToken("u-1").
					Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"gopher","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "gopher", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
