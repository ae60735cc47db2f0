package cropledger

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/crop-ledger/internal/config"
	"github.com/magabrotheeeer/crop-ledger/internal/lib/jwt"
	"github.com/magabrotheeeer/crop-ledger/internal/migrations"
	authservice "github.com/magabrotheeeer/crop-ledger/internal/services/auth"
	cropservice "github.com/magabrotheeeer/crop-ledger/internal/services/crop"
	expenseservice "github.com/magabrotheeeer/crop-ledger/internal/services/expense"
	incomeservice "github.com/magabrotheeeer/crop-ledger/internal/services/income"
	"github.com/magabrotheeeer/crop-ledger/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и подключение к хранилищу.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New собирает приложение: хранилище, миграции, сервисы и маршруты.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	cropService := cropservice.NewCropService(db, db, logger)
	expenseService := expenseservice.NewExpenseService(db, logger)
	incomeService := incomeservice.NewIncomeService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg.CORSAllowedOrigins,
		authService, cropService, expenseService, incomeService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
