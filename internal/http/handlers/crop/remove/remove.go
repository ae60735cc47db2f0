// Package remove реализует HTTP-обработчик удаления посева по ID.
// Удалить посев может только его владелец; чужая или отсутствующая
// запись отвечает HTTP 404.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crop-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crop-ledger/internal/http/response"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/sl"
	cropservice "github.com/magabrotheeeer/crop-ledger/internal/services/crop"
)

// Service описывает интерфейс бизнес-логики удаления посева.
type Service interface {
	Remove(ctx context.Context, id, userUID string) error
}

// Handler обрабатывает HTTP-запросы удаления посева.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить посев по ID
// @Description Удаляет посев текущего пользователя. Чужой или отсутствующий посев — 404.
// @Tags Crops
// @Produce  json
// @Param id path string true "Идентификатор посева"
// @Success 200 {object} response.Response "Посев удалён"
// @Failure 404 {object} response.ErrorResponse "Посев не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security SessionAuth
// @Router /crops/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.crop.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), id, userUID); err != nil {
		if errors.Is(err, cropservice.ErrCropNotFound) {
			log.Error("crop not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("crop not found"))
			return
		}
		log.Error("failed to delete crop", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	log.Info("crop deleted", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "crop deleted",
	}))
}
