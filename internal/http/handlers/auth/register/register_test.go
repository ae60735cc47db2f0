package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authservice "github.com/magabrotheeeer/crop-ledger/internal/services/auth"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, name, email, rawPassword string) (string, error) {
	args := m.Called(ctx, name, email, rawPassword)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			requestBody: Request{
				Name:     "Test Farmer",
				Email:    "farmer@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Test Farmer", "farmer@example.com", "password123").
					Return("new-user-uid", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","data":{"message":"user registered successfully"}}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка валидации - отсутствуют обязательные поля",
			requestBody: Request{
				Name:     "",
				Email:    "",
				Password: "",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Name is a required field, field Email is a required field, field Password is a required field"}`,
		},
		{
			name: "ошибка валидации - некорректный email",
			requestBody: Request{
				Name:     "Test Farmer",
				Email:    "not-an-email",
				Password: "password123",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Email must be a valid email"}`,
		},
		{
			name: "ошибка валидации - короткий пароль",
			requestBody: Request{
				Name:     "Test Farmer",
				Email:    "farmer@example.com",
				Password: "123",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Password is too short"}`,
		},
		{
			name: "email уже занят",
			requestBody: Request{
				Name:     "Test Farmer",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Test Farmer", "taken@example.com", "password123").
					Return("", authservice.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"user already exists"}`,
		},
		{
			name: "ошибка сервиса",
			requestBody: Request{
				Name:     "Test Farmer",
				Email:    "farmer@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Test Farmer", "farmer@example.com", "password123").
					Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
