package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crop-ledger/internal/http/middlewarectx"
	cropservice "github.com/magabrotheeeer/crop-ledger/internal/services/crop"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, id, userUID string) error {
	args := m.Called(ctx, id, userUID)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const userUID = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name           string
		cropID         string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное удаление",
			cropID:  "crop-1",
			userUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "crop-1", userUID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"message":"crop deleted"}}`,
		},
		{
			name:    "посев не найден или чужой",
			cropID:  "crop-2",
			userUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "crop-2", userUID).Return(cropservice.ErrCropNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"crop not found"}`,
		},
		{
			name:           "нет авторизации",
			cropID:         "crop-1",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "ошибка сервиса",
			cropID:  "crop-3",
			userUID: userUID,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "crop-3", userUID).Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/crops/"+tt.cropID, nil)
			// Устанавливаем URL param для ID
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.cropID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
