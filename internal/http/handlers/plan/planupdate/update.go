// Package planupdate реализует HTTP-обработчик частичного обновления тарифа.
package planupdate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	Update(ctx context.Context, id int, req models.PlanUpdate) (*models.Plan, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить тариф
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param id path int true "Идентификатор тарифа"
// @Param request body models.PlanUpdate true "Изменяемые поля"
// @Success 200 {object} map[string]any "Обновленный тариф"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /plans/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req models.PlanUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
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

	plan, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update plan", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		switch {
		case errors.Is(err, models.ErrNotFound):
			render.JSON(w, r, response.Error("plan not found"))
		case errors.Is(err, models.ErrInvalidInput):
			render.JSON(w, r, response.Error("renewal period must be positive"))
		default:
			render.JSON(w, r, response.Error("could not update plan"))
		}
		return
	}

	log.Info("plan updated", slog.Int("id", plan.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plan": plan,
	}))
}
