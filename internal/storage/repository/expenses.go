package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

// buildEntryWhere собирает условие отбора дочерних записей посева
// с опциональным диапазоном дат.
func buildEntryWhere(filter models.EntryFilter) (string, []any) {
	where := "crop_id = $1"
	args := []any{filter.CropID}

	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	return where, args
}

// CreateExpense вставляет новую запись расхода и возвращает её ID.
func (s *Storage) CreateExpense(ctx context.Context, expense models.Expense) (string, error) {
	const op = "storage.CreateExpense"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO expenses (crop_id, type, date, amount, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		expense.CropID, expense.Type, expense.Date, expense.Amount, expense.Notes).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveExpense удаляет расход по ID, если посев принадлежит пользователю,
// и возвращает количество удалённых строк.
func (s *Storage) RemoveExpense(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveExpense"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM expenses
			  USING crops
			  WHERE expenses.id = $1
			    AND crops.id = expenses.crop_id
			    AND crops.user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListExpenses возвращает расходы посева по фильтру, новые даты первыми.
func (s *Storage) ListExpenses(ctx context.Context, filter models.EntryFilter) ([]*models.Expense, error) {
	const op = "storage.ListExpenses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	where, args := buildEntryWhere(filter)
	query := `SELECT id, crop_id, type, date, amount, notes, created_at
			  FROM expenses
			  WHERE ` + where + `
			  ORDER BY date DESC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Expense
	for rows.Next() {
		var item models.Expense
		if err := rows.Scan(&item.ID, &item.CropID, &item.Type, &item.Date,
			&item.Amount, &item.Notes, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SumExpensesByCrop возвращает сумму всех расходов посева.
// Пустая сумма считается нулём.
func (s *Storage) SumExpensesByCrop(ctx context.Context, cropID string) (float64, error) {
	const op = "storage.SumExpensesByCrop"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE crop_id = $1`
	var sum float64
	if err := s.DB.QueryRowContext(ctx, query, cropID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}
