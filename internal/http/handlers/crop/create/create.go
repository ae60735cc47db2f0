// Package create реализует HTTP-обработчик для создания новых посевов пользователя.
//
// Handler принимает JSON-запрос с данными посева, валидирует их, извлекает
// идентификатор пользователя из контекста, вызывает бизнес-логику создания
// посева через сервис и возвращает ID созданной записи в JSON-формате.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/crop-ledger/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crop-ledger/internal/http/response"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

// Service описывает интерфейс бизнес-логики создания посева.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyCrop) (string, error)
}

// Handler управляет HTTP-запросами на создание новых посевов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания посевов
	validate *validator.Validate // Валидатор структуры входящих данных
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
// @Summary Добавить новый посев
// @Description Создает новый посев для текущего пользователя. Возвращает ID созданной записи.
// @Tags Crops
// @Accept  json
// @Produce  json
// @Param request body models.DummyCrop true "Данные нового посева"
// @Success 201 {object} response.Response "Посев создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security SessionAuth
// @Router /crops [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.crop.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCrop
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
		log.Error("failed to create crop", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	log.Info("crop created", slog.String("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":      id,
		"message": "crop added",
	}))
}
