// Package cropledger предоставляет маршруты для основного приложения.
package cropledger

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/crop-ledger/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/crop-ledger/internal/http/handlers/auth/register"
	cropcreate "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/crop/create"
	croplist "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/crop/list"
	cropremove "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/crop/remove"
	expensecreate "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/expense/create"
	expenselist "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/expense/list"
	expenseremove "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/expense/remove"
	incomecreate "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/income/create"
	incomelist "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/income/list"
	incomeremove "github.com/magabrotheeeer/crop-ledger/internal/http/handlers/income/remove"
	"github.com/magabrotheeeer/crop-ledger/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/crop-ledger/internal/services/auth"
	cropservice "github.com/magabrotheeeer/crop-ledger/internal/services/crop"
	expenseservice "github.com/magabrotheeeer/crop-ledger/internal/services/expense"
	incomeservice "github.com/magabrotheeeer/crop-ledger/internal/services/income"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, corsAllowedOrigins []string,
	authService *authservice.AuthService, cropService *cropservice.CropService,
	expenseService *expenseservice.ExpenseService, incomeService *incomeservice.IncomeService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.CORSMiddleware(corsAllowedOrigins),
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/user/register", register.New(logger, authService).ServeHTTP)
		r.Post("/user/login", login.New(logger, authService).ServeHTTP)

		// Группа с проверкой токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/crops", croplist.New(logger, cropService).ServeHTTP)
			r.Post("/crops", cropcreate.New(logger, cropService).ServeHTTP)
			r.Delete("/crops/{id}", cropremove.New(logger, cropService).ServeHTTP)
			r.Get("/expenses/{cropId}", expenselist.New(logger, expenseService).ServeHTTP)
			r.Post("/expenses", expensecreate.New(logger, expenseService).ServeHTTP)
			r.Delete("/expenses/{id}", expenseremove.New(logger, expenseService).ServeHTTP)
			r.Get("/incomes/{cropId}", incomelist.New(logger, incomeService).ServeHTTP)
			r.Post("/incomes", incomecreate.New(logger, incomeService).ServeHTTP)
			r.Delete("/incomes/{id}", incomeremove.New(logger, incomeService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
