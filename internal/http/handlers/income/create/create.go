// Package create реализует HTTP-обработчик для добавления доходов посева.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/crop-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crop-ledger/internal/http/response"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/crop-ledger/internal/models"
	incomeservice "github.com/magabrotheeeer/crop-ledger/internal/services/income"
)

// Service описывает интерфейс бизнес-логики создания дохода.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyIncome) (string, error)
}

// Handler управляет HTTP-запросами на добавление доходов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
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
// @Summary Добавить доход
// @Description Создает запись дохода для посева текущего пользователя. Выручка считается как quantity * amount.
// @Tags Incomes
// @Accept  json
// @Produce  json
// @Param request body models.DummyIncome true "Данные дохода"
// @Success 200 {object} response.Response "Доход сохранён"
// @Failure 404 {object} response.ErrorResponse "Посев не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security SessionAuth
// @Router /incomes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.income.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyIncome
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		if errors.Is(err, incomeservice.ErrCropNotFound) {
			log.Error("crop not found", slog.String("crop_id", req.CropID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("crop not found"))
			return
		}
		log.Error("failed to create income", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	log.Info("income created", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":      id,
		"message": "income saved",
	}))
}
