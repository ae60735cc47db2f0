package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crop-ledger/internal/http/response"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

type Service interface {
	List(ctx context.Context, cropID, fromDate, toDate string) ([]models.IncomeInfo, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список доходов посева
// @Description Возвращает доходы посева с опциональным диапазоном дат, новые даты первыми.
// @Tags Incomes
// @Produce  json
// @Param cropId path string true "Идентификатор посева"
// @Param fromDate query string false "Дата с" example(2025-01-01)
// @Param toDate query string false "Дата по" example(2025-01-31)
// @Success 200 {array} models.IncomeInfo "Список доходов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security SessionAuth
// @Router /incomes/{cropId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.income.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cropID := chi.URLParam(r, "cropId")
	fromDate := r.URL.Query().Get("fromDate")
	toDate := r.URL.Query().Get("toDate")

	result, err := h.service.List(r.Context(), cropID, fromDate, toDate)
	if err != nil {
		log.Error("failed to list incomes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	log.Info("listed incomes", slog.Int("count", len(result)))
	render.JSON(w, r, response.StatusOKWithData(result))
}
