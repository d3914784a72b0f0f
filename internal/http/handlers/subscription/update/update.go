// Package update реализует HTTP-обработчик частичного обновления подписки.
// Смена журнала или тарифа приводит к пересчёту цены подписки.
package update

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
	Update(ctx context.Context, id int, req models.SubscriptionUpdate) (*models.Subscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить подписку
// @Security BearerAuth
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param id path int true "Идентификатор подписки"
// @Param request body models.SubscriptionUpdate true "Изменяемые поля"
// @Success 200 {object} map[string]any "Обновленная подписка с пересчитанной ценой"
// @Failure 404 {object} response.ErrorResponse "Подписка или новая ссылка не найдены"
// @Router /subscriptions/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.update"

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

	var req models.SubscriptionUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	sub, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update subscription", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		if errors.Is(err, models.ErrNotFound) {
			render.JSON(w, r, response.Error("subscription not found"))
			return
		}
		render.JSON(w, r, response.Error("could not update subscription"))
		return
	}

	log.Info("subscription updated",
		slog.Int("id", sub.ID),
		slog.Float64("price", sub.Price),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subscription": sub,
	}))
}
