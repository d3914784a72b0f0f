// Package magazineread реализует HTTP-обработчик получения журнала по ID.
package magazineread

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
	Read(ctx context.Context, id int) (*models.Magazine, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить журнал по ID
// @Tags Magazines
// @Produce  json
// @Param id path int true "ID журнала"
// @Success 200 {object} map[string]any "Журнал"
// @Failure 404 {object} response.ErrorResponse "Журнал не найден"
// @Router /magazines/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.magazine.read"

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

	magazine, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read magazine", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		if errors.Is(err, models.ErrNotFound) {
			render.JSON(w, r, response.Error("magazine not found"))
			return
		}
		render.JSON(w, r, response.Error("could not read magazine"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"magazine": magazine,
	}))
}
