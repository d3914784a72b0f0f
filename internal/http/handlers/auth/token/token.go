// Package token реализует вход по форме в стиле OAuth2 password grant.
//
// Принимает application/x-www-form-urlencoded поля username и password,
// возвращает только токен доступа. Неверные учетные данные дают 400,
// как в классическом password grant.
package token

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы на выдачу токена по форме.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи токена.
type Service interface {
	Token(ctx context.Context, username, password string) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выдача токена доступа (password grant)
// @Description Аутентифицирует пользователя по полям формы и возвращает access-токен.
// @Tags Users
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param username formData string true "Имя пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} map[string]any "Токен доступа"
// @Failure 400 {object} response.ErrorResponse "Неверные имя пользователя или пароль"
// @Router /token/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid form data"))
		return
	}

	username := r.PostFormValue("username")
	pass := r.PostFormValue("password")
	if username == "" || pass == "" {
		log.Error("missing username or password")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("username and password are required"))
		return
	}

	access, err := h.service.Token(r.Context(), username, pass)
	if err != nil {
		log.Error("token request failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("incorrect username or password"))
		return
	}

	log.Info("access token issued", slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"access_token": access,
		"token_type":   "bearer",
	}))
}
