// Package planread реализует HTTP-обработчик получения тарифа по идентификатору.
package planread

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Read(ctx context.Context, id int) (*models.Plan, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить тариф по ID
// @Tags Plans
// @Produce  json
// @Param id path int true "Идентификатор тарифа"
// @Success 200 {object} map[string]any "Тариф"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Router /plans/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.read"

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

	plan, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read plan", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		if errors.Is(err, models.ErrNotFound) {
			render.JSON(w, r, response.Error("plan not found"))
			return
		}
		render.JSON(w, r, response.Error("could not read plan"))
		return
	}

	log.Info("plan read", slog.Int("id", plan.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plan": plan,
	}))
}
