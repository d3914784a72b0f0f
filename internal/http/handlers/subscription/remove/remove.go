// Package remove реализует HTTP-обработчик отмены подписки.
// Подписка не удаляется физически, а помечается неактивной, и только
// в рамках записей текущего пользователя.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eroshevich/magazine-subscription-service/internal/http/middlewarectx"
	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Deactivate(ctx context.Context, id, userID int) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отменить подписку
// @Security BearerAuth
// @Tags Subscriptions
// @Produce  json
// @Param id path int true "Идентификатор подписки"
// @Success 200 {object} map[string]any "Подписка деактивирована"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Router /subscriptions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.remove"

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

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok {
		log.Error("user id is missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Deactivate(r.Context(), id, userID); err != nil {
		log.Error("failed to deactivate subscription", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		if errors.Is(err, models.ErrNotFound) {
			render.JSON(w, r, response.Error("subscription not found"))
			return
		}
		render.JSON(w, r, response.Error("could not deactivate subscription"))
		return
	}

	log.Info("subscription deactivated", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deactivated_id": id,
	}))
}
