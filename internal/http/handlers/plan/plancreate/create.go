// Package plancreate реализует HTTP-обработчик создания тарифа.
package plancreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// Handler обрабатывает HTTP-запросы на создание тарифа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания тарифа.
type Service interface {
	Create(ctx context.Context, req models.DummyPlan) (*models.Plan, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать тариф
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param request body models.DummyPlan true "Данные нового тарифа"
// @Success 200 {object} map[string]any "Созданный тариф"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Журнал не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /plans/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPlan
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	plan, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create plan", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		switch {
		case errors.Is(err, models.ErrNotFound):
			render.JSON(w, r, response.Error("magazine not found"))
		case errors.Is(err, models.ErrInvalidInput):
			render.JSON(w, r, response.Error("renewal period must be positive"))
		default:
			render.JSON(w, r, response.Error("could not create plan"))
		}
		return
	}

	log.Info("plan created", slog.Int("id", plan.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plan": plan,
	}))
}
