// Package create реализует HTTP-обработчик оформления подписки.
package create

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

// Handler обрабатывает HTTP-запросы на оформление подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики оформления подписки.
type Service interface {
	Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, error)
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
// @Summary Оформить подписку
// @Security BearerAuth
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body models.DummySubscription true "Данные новой подписки"
// @Success 200 {object} map[string]any "Созданная подписка с вычисленной ценой"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пользователь, журнал или тариф не найдены"
// @Failure 409 {object} response.ErrorResponse "Подписка уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или неположительная цена"
// @Router /subscriptions/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummySubscription
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

	sub, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create subscription", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		switch {
		case errors.Is(err, models.ErrAlreadyExists):
			render.JSON(w, r, response.Error("subscription already exists"))
		case errors.Is(err, models.ErrNotFound):
			render.JSON(w, r, response.Error("referenced entity not found"))
		case errors.Is(err, models.ErrInvalidInput):
			render.JSON(w, r, response.Error("computed price must be positive"))
		default:
			render.JSON(w, r, response.Error("could not create subscription"))
		}
		return
	}

	log.Info("subscription created",
		slog.Int("id", sub.ID),
		slog.Float64("price", sub.Price),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subscription": sub,
	}))
}
