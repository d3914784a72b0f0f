// Package deactivate реализует HTTP-обработчик мягкого удаления пользователя.
package deactivate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// Handler обрабатывает HTTP-запросы на деактивацию пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики деактивации.
type Service interface {
	Deactivate(ctx context.Context, username string) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Деактивация пользователя
// @Description Помечает пользователя неактивным (мягкое удаление).
// @Tags Users
// @Produce  json
// @Security BearerAuth
// @Param username path string true "Имя пользователя"
// @Success 200 {object} map[string]any "Деактивированный пользователь"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /users/deactivate/{username} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.deactivate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")
	if username == "" {
		log.Error("missing username in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing username"))
		return
	}

	user, err := h.service.Deactivate(r.Context(), username)
	if err != nil {
		log.Error("failed to deactivate user", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		if errors.Is(err, models.ErrNotFound) {
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		render.JSON(w, r, response.Error("could not deactivate user"))
		return
	}

	log.Info("user deactivated", slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
