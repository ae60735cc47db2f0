// Package services содержит бизнес-логику для управления доходами посевов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

const dateLayout = "2006-01-02"

var (
	// ErrCropNotFound возвращается при создании дохода для чужого
	// или несуществующего посева.
	ErrCropNotFound = errors.New("crop not found")
	// ErrIncomeNotFound возвращается при удалении отсутствующего дохода.
	ErrIncomeNotFound = errors.New("income not found")
)

// IncomeRepository определяет методы для работы с доходами в хранилище.
type IncomeRepository interface {
	// CreateIncome добавляет новый доход и возвращает его ID.
	CreateIncome(ctx context.Context, income models.Income) (string, error)
	// RemoveIncome удаляет доход по ID с проверкой владельца посева.
	RemoveIncome(ctx context.Context, id, userUID string) (int, error)
	// ListIncomes возвращает доходы посева по фильтру.
	ListIncomes(ctx context.Context, filter models.EntryFilter) ([]*models.Income, error)
	// OwnsCrop проверяет, что посев существует и принадлежит пользователю.
	OwnsCrop(ctx context.Context, cropID, userUID string) (bool, error)
}

// IncomeService реализует бизнес-логику работы с доходами.
type IncomeService struct {
	repo IncomeRepository
	log  *slog.Logger
}

// NewIncomeService создает новый экземпляр IncomeService.
func NewIncomeService(repo IncomeRepository, log *slog.Logger) *IncomeService {
	return &IncomeService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый доход для посева пользователя.
// Возвращает ErrCropNotFound, если посев отсутствует или принадлежит другому пользователю.
func (s *IncomeService) Create(ctx context.Context, userUID string, req models.DummyIncome) (string, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("invalid date: %w", err)
	}

	owns, err := s.repo.OwnsCrop(ctx, req.CropID, userUID)
	if err != nil {
		return "", err
	}
	if !owns {
		return "", ErrCropNotFound
	}

	income := models.Income{
		CropID:   req.CropID,
		Quantity: req.Quantity,
		Amount:   req.Amount,
		Date:     date,
	}
	if req.Notes != "" {
		income.Notes = &req.Notes
	}

	id, err := s.repo.CreateIncome(ctx, income)
	if err != nil {
		return "", err
	}

	s.log.Info("created new income", slog.String("id", id))
	return id, nil
}

// Remove удаляет доход по ID с проверкой владельца.
// Возвращает ErrIncomeNotFound, если запись отсутствует.
func (s *IncomeService) Remove(ctx context.Context, id, userUID string) error {
	count, err := s.repo.RemoveIncome(ctx, id, userUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrIncomeNotFound
	}
	return nil
}

// List возвращает доходы посева с опциональным диапазоном дат.
func (s *IncomeService) List(ctx context.Context, cropID, fromDate, toDate string) ([]models.IncomeInfo, error) {
	filter := models.EntryFilter{CropID: cropID}
	if fromDate != "" {
		from, err := time.Parse(dateLayout, fromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid fromDate: %w", err)
		}
		filter.From = &from
	}
	if toDate != "" {
		to, err := time.Parse(dateLayout, toDate)
		if err != nil {
			return nil, fmt.Errorf("invalid toDate: %w", err)
		}
		filter.To = &to
	}

	incomes, err := s.repo.ListIncomes(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]models.IncomeInfo, 0, len(incomes))
	for _, income := range incomes {
		result = append(result, models.IncomeInfo{
			ID:       income.ID,
			Date:     income.Date,
			Quantity: income.Quantity,
			Amount:   income.Amount,
			Notes:    income.Notes,
		})
	}
	return result, nil
}
