// Package magazinecreate реализует HTTP-обработчик создания журнала.
package magazinecreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/eroshevich/magazine-subscription-service/internal/http/response"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/sl"
	"github.com/eroshevich/magazine-subscription-service/internal/models"
)

// Handler обрабатывает HTTP-запросы на создание журнала.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания журнала.
type Service interface {
	Create(ctx context.Context, req models.DummyMagazine) (*models.Magazine, error)
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
// @Summary Создать журнал
// @Tags Magazines
// @Accept  json
// @Produce  json
// @Param request body models.DummyMagazine true "Данные нового журнала"
// @Success 200 {object} map[string]any "Созданный журнал"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /magazines/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.magazine.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMagazine
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

	magazine, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create magazine", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.Error("could not create magazine"))
		return
	}

	log.Info("magazine created", slog.Int("id", magazine.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"magazine": magazine,
	}))
}
