package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eroshevich/magazine-subscription-service/internal/http/middlewarectx"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Deactivate(ctx context.Context, id, userID int) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		idParam        string
		userID         any
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешная отмена подписки",
			idParam: "5",
			userID:  1,
			setupMock: func(m *MockService) {
				m.On("Deactivate", mock.Anything, 5, 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"deactivated_id":5`,
		},
		{
			name:           "некорректный id в URL",
			idParam:        "abc",
			userID:         1,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid id"`,
		},
		{
			name:           "нет user id в контексте",
			idParam:        "5",
			userID:         nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:    "чужая подписка выглядит отсутствующей",
			idParam: "5",
			userID:  2,
			setupMock: func(m *MockService) {
				m.On("Deactivate", mock.Anything, 5, 2).Return(models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"subscription not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/subscriptions/"+tt.idParam, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.idParam)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userID != nil {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
