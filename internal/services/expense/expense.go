// Package services содержит бизнес-логику для управления расходами посевов.
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
	// ErrCropNotFound возвращается при создании расхода для чужого
	// или несуществующего посева.
	ErrCropNotFound = errors.New("crop not found")
	// ErrExpenseNotFound возвращается при удалении отсутствующего расхода.
	ErrExpenseNotFound = errors.New("expense not found")
)

// ExpenseRepository определяет методы для работы с расходами в хранилище.
type ExpenseRepository interface {
	// CreateExpense добавляет новый расход и возвращает его ID.
	CreateExpense(ctx context.Context, expense models.Expense) (string, error)
	// RemoveExpense удаляет расход по ID с проверкой владельца посева.
	RemoveExpense(ctx context.Context, id, userUID string) (int, error)
	// ListExpenses возвращает расходы посева по фильтру.
	ListExpenses(ctx context.Context, filter models.EntryFilter) ([]*models.Expense, error)
	// OwnsCrop проверяет, что посев существует и принадлежит пользователю.
	OwnsCrop(ctx context.Context, cropID, userUID string) (bool, error)
}

// ExpenseService реализует бизнес-логику работы с расходами.
type ExpenseService struct {
	repo ExpenseRepository
	log  *slog.Logger
}

// NewExpenseService создает новый экземпляр ExpenseService.
func NewExpenseService(repo ExpenseRepository, log *slog.Logger) *ExpenseService {
	return &ExpenseService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый расход для посева пользователя.
// Возвращает ErrCropNotFound, если посев отсутствует или принадлежит другому пользователю.
func (s *ExpenseService) Create(ctx context.Context, userUID string, req models.DummyExpense) (string, error) {
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

	expense := models.Expense{
		CropID: req.CropID,
		Type:   req.Type,
		Date:   date,
		Amount: req.Amount,
	}
	if req.Notes != "" {
		expense.Notes = &req.Notes
	}

	id, err := s.repo.CreateExpense(ctx, expense)
	if err != nil {
		return "", err
	}

	s.log.Info("created new expense", slog.String("id", id))
	return id, nil
}

// Remove удаляет расход по ID с проверкой владельца.
// Возвращает ErrExpenseNotFound, если запись отсутствует.
func (s *ExpenseService) Remove(ctx context.Context, id, userUID string) error {
	count, err := s.repo.RemoveExpense(ctx, id, userUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// List возвращает расходы посева с опциональным диапазоном дат.
func (s *ExpenseService) List(ctx context.Context, cropID, fromDate, toDate string) ([]models.ExpenseInfo, error) {
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

	expenses, err := s.repo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]models.ExpenseInfo, 0, len(expenses))
	for _, expense := range expenses {
		result = append(result, models.ExpenseInfo{
			ID:     expense.ID,
			Type:   expense.Type,
			Date:   expense.Date,
			Amount: expense.Amount,
			Notes:  expense.Notes,
		})
	}
	return result, nil
}
