// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// AuthMiddleware проверяет наличие и валидность токена в заголовке Sessionauth
// и в случае успеха добавляет в контекст идентификатор и email пользователя
// для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с единым
// сообщением — причина отказа наружу не раскрывается.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crop-ledger/internal/http/response"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/sl"
	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserUID — ключ для идентификатора пользователя в контексте
	UserUID Key = "user_uid"
	// Email — ключ для email пользователя в контексте
	Email Key = "email"
)

// authHeader — заголовок с токеном доступа.
const authHeader = "Sessionauth"

// Service описывает интерфейс сервиса для валидации токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет токен
// в заголовке Sessionauth. Токен принимается и с префиксом схемы
// ("Bearer <token>"), и без него: значение из одного слова считается
// голым токеном.
//
// Если токен валиден, добавляет uid и email пользователя в контекст запроса,
// иначе возвращает HTTP 401 Unauthorized.
func AuthMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			header := r.Header.Get(authHeader)
			if header == "" {
				log.Error("missing authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token access"))
				return
			}

			tokenStr := header
			if i := strings.IndexByte(header, ' '); i >= 0 {
				tokenStr = strings.TrimSpace(header[i+1:])
			}

			user, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token access"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, user.UID)
			ctx = context.WithValue(ctx, Email, user.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
