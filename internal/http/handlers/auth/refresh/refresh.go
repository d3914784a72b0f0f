// Package refresh реализует HTTP-обработчик обновления токена доступа.
//
// Refresh-токен передаётся в заголовке Authorization; в ответе возвращается
// новый access-токен и тот же refresh-токен.
package refresh

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы на обновление токена доступа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления токена.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновление токена доступа
// @Description Принимает refresh-токен в заголовке Authorization и выдаёт новый access-токен.
// @Tags Users
// @Produce  json
// @Success 200 {object} map[string]any "Новый токен доступа"
// @Failure 401 {object} response.ErrorResponse "Невалидный refresh-токен"
// @Router /users/token/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Error("missing or invalid authorization header")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing or invalid authorization header"))
		return
	}
	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	access, err := h.service.Refresh(r.Context(), refreshToken)
	if err != nil {
		log.Error("failed to refresh token", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid refresh token"))
		return
	}

	log.Info("access token refreshed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"access_token":  access,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
	}))
}
