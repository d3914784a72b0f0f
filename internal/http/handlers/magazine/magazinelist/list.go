// Package magazinelist реализует HTTP-обработчик получения списка журналов.
package magazinelist

import (
	"context"
	"log/slog"
	"net/http"

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
	List(ctx context.Context) ([]*models.Magazine, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.magazine.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	magazines, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list magazines", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list magazines"))
		return
	}

	log.Info("magazines listed", slog.Int("count", len(magazines)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"magazines": magazines,
	}))
}
