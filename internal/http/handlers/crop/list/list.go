// Package list реализует HTTP-обработчик сводного списка посевов.
//
// Handler принимает параметры фильтра из query-строки (диапазон дат по дате
// посадки, идентификатор посева, номер страницы) и возвращает страницу
// сводных записей с суммами расходов, доходов и прибылью по каждому посеву.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crop-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crop-ledger/internal/http/response"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

// Service описывает интерфейс бизнес-логики сводного списка.
type Service interface {
	ListSummaries(ctx context.Context, userUID string, req models.DummyCropFilter) (*models.CropSummaryPage, error)
}

// Handler обрабатывает HTTP-запросы сводного списка посевов.
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
// @Summary Список посевов с расходами, доходами и прибылью
// @Description Возвращает страницу посевов пользователя (по 5 записей) с суммами расходов, доходов и прибылью. Диапазон дат применяется к дате посадки.
// @Tags Crops
// @Produce  json
// @Param fromDate query string false "Нижняя граница даты посадки" example(2025-01-01)
// @Param toDate query string false "Верхняя граница даты посадки" example(2025-01-31)
// @Param cropId query string false "Идентификатор посева"
// @Param pageNumber query int false "Номер страницы, по умолчанию 1"
// @Success 200 {object} models.CropSummaryPage "Страница сводных записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security SessionAuth
// @Router /crops [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.crop.list"

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

	pageNumber, err := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	if err != nil || pageNumber < 1 {
		pageNumber = 1
	}

	req := models.DummyCropFilter{
		FromDate:   r.URL.Query().Get("fromDate"),
		ToDate:     r.URL.Query().Get("toDate"),
		CropID:     r.URL.Query().Get("cropId"),
		PageNumber: pageNumber,
	}

	page, err := h.service.ListSummaries(r.Context(), userUID, req)
	if err != nil {
		log.Error("failed to list crops", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	log.Info("listed crops", slog.Int("count", len(page.Data)))
	render.JSON(w, r, response.StatusOKWithData(page))
}
