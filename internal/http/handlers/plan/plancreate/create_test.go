package plancreate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// MockService реализует интерфейс plancreate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Plan), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание тарифа",
			body: `{"title":"monthly","renewal_period":30,"tier":1,"discount":0.2,"magazine_id":2}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, models.DummyPlan{
					Title: "monthly", RenewalPeriod: 30, Tier: 1, Discount: 0.2, MagazineID: 2,
				}).Return(&models.Plan{
					ID: 3, Title: "monthly", RenewalPeriod: 30, Tier: 1, Discount: 0.2, MagazineID: 2,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"monthly"`,
		},
		{
			name:           "нулевой период продления отклонен валидатором",
			body:           `{"title":"broken","renewal_period":0,"magazine_id":2}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `RenewalPeriod is a required field`,
		},
		{
			name:           "отрицательный период продления отклонен валидатором",
			body:           `{"title":"broken","renewal_period":-5,"magazine_id":2}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `RenewalPeriod must be greater than 0`,
		},
		{
			name: "неизвестный журнал",
			body: `{"title":"orphan","renewal_period":30,"magazine_id":99}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"magazine not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/plans/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
