// Package services содержит бизнес-логику для управления посевами,
// включая сводный список с расчётом прибыли.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

// dateLayout — формат дат во входных данных.
const dateLayout = "2006-01-02"

// pageSize — фиксированный размер страницы сводного списка.
const pageSize = 5

// ErrCropNotFound возвращается, когда посев отсутствует
// или не принадлежит пользователю.
var ErrCropNotFound = errors.New("crop not found")

// CropRepository определяет методы для работы с посевами в хранилище.
type CropRepository interface {
	// CreateCrop добавляет новый посев и возвращает его ID.
	CreateCrop(ctx context.Context, crop models.Crop) (string, error)
	// RemoveCrop удаляет посев пользователя по ID и возвращает количество удалённых записей.
	RemoveCrop(ctx context.Context, id, userUID string) (int, error)
	// CountCrops возвращает количество посевов по фильтру.
	CountCrops(ctx context.Context, filter models.CropFilter) (int, error)
	// ListCrops возвращает страницу посевов по фильтру.
	ListCrops(ctx context.Context, filter models.CropFilter, limit, offset int) ([]*models.Crop, error)
}

// LedgerRepository определяет методы агрегирования дочерних записей посева.
type LedgerRepository interface {
	// SumExpensesByCrop возвращает сумму всех расходов посева.
	SumExpensesByCrop(ctx context.Context, cropID string) (float64, error)
	// SumIncomesByCrop возвращает выручку посева (сумма quantity * amount).
	SumIncomesByCrop(ctx context.Context, cropID string) (float64, error)
}

// CropService реализует бизнес-логику работы с посевами.
type CropService struct {
	crops  CropRepository
	ledger LedgerRepository
	log    *slog.Logger
}

// NewCropService создает новый экземпляр CropService.
func NewCropService(crops CropRepository, ledger LedgerRepository, log *slog.Logger) *CropService {
	return &CropService{
		crops:  crops,
		ledger: ledger,
		log:    log,
	}
}

// Create создает новый посев для пользователя и возвращает его ID.
func (s *CropService) Create(ctx context.Context, userUID string, req models.DummyCrop) (string, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("invalid date: %w", err)
	}

	crop := models.Crop{
		UserUID: userUID,
		Name:    req.Name,
		Acres:   req.Acres,
		Date:    date,
	}
	id, err := s.crops.CreateCrop(ctx, crop)
	if err != nil {
		return "", err
	}

	s.log.Info("created new crop", slog.String("id", id))
	return id, nil
}

// Remove удаляет посев пользователя по ID.
// Возвращает ErrCropNotFound, если запись отсутствует или принадлежит другому пользователю.
func (s *CropService) Remove(ctx context.Context, id, userUID string) error {
	count, err := s.crops.RemoveCrop(ctx, id, userUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrCropNotFound
	}
	return nil
}

// ListSummaries возвращает страницу сводных записей по посевам пользователя.
//
// Фильтр дат применяется только к дате посадки посева: расходы и доходы
// каждого попавшего на страницу посева суммируются целиком, без среза по датам.
// Агрегация по посевам страницы выполняется конкурентно, порядок страницы
// при этом сохраняется. Любая ошибка хранилища отменяет весь запрос —
// частичные результаты не возвращаются.
func (s *CropService) ListSummaries(ctx context.Context, userUID string, req models.DummyCropFilter) (*models.CropSummaryPage, error) {
	filter := models.CropFilter{UserUID: userUID}
	if req.CropID != "" {
		filter.CropID = &req.CropID
	}
	if req.FromDate != "" {
		from, err := time.Parse(dateLayout, req.FromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid fromDate: %w", err)
		}
		filter.From = &from
	}
	if req.ToDate != "" {
		to, err := time.Parse(dateLayout, req.ToDate)
		if err != nil {
			return nil, fmt.Errorf("invalid toDate: %w", err)
		}
		filter.To = &to
	}

	page := req.PageNumber
	if page < 1 {
		page = 1
	}

	total, err := s.crops.CountCrops(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := (total + pageSize - 1) / pageSize

	crops, err := s.crops.ListCrops(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.CropSummary, len(crops))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, crop := range crops {
		wg.Add(1)
		go func(i int, crop *models.Crop) {
			defer wg.Done()

			expenseAmount, err := s.ledger.SumExpensesByCrop(ctx, crop.ID)
			if err == nil {
				var incomeAmount float64
				incomeAmount, err = s.ledger.SumIncomesByCrop(ctx, crop.ID)
				if err == nil {
					summaries[i] = models.CropSummary{
						ID:            crop.ID,
						Name:          crop.Name,
						Acre:          crop.Acres,
						ExpenseAmount: expenseAmount,
						IncomeAmount:  incomeAmount,
						Profit:        incomeAmount - expenseAmount,
					}
					return
				}
			}
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}(i, crop)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	s.log.Info("collected crop summaries",
		slog.Int("page", page), slog.Int("count", len(summaries)))

	return &models.CropSummaryPage{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
		Data:         summaries,
	}, nil
}
