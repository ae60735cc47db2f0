package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

// CreateIncome вставляет новую запись дохода и возвращает её ID.
func (s *Storage) CreateIncome(ctx context.Context, income models.Income) (string, error) {
	const op = "storage.CreateIncome"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO incomes (crop_id, quantity, amount, date, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		income.CropID, income.Quantity, income.Amount, income.Date, income.Notes).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveIncome удаляет доход по ID, если посев принадлежит пользователю,
// и возвращает количество удалённых строк.
func (s *Storage) RemoveIncome(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveIncome"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM incomes
			  USING crops
			  WHERE incomes.id = $1
			    AND crops.id = incomes.crop_id
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

// ListIncomes возвращает доходы посева по фильтру, новые даты первыми.
func (s *Storage) ListIncomes(ctx context.Context, filter models.EntryFilter) ([]*models.Income, error) {
	const op = "storage.ListIncomes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	where, args := buildEntryWhere(filter)
	query := `SELECT id, crop_id, quantity, amount, date, notes, created_at
			  FROM incomes
			  WHERE ` + where + `
			  ORDER BY date DESC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Income
	for rows.Next() {
		var item models.Income
		if err := rows.Scan(&item.ID, &item.CropID, &item.Quantity, &item.Amount,
			&item.Date, &item.Notes, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SumIncomesByCrop возвращает выручку посева: сумму quantity * amount
// по всем его доходам. Пустая сумма считается нулём.
func (s *Storage) SumIncomesByCrop(ctx context.Context, cropID string) (float64, error) {
	const op = "storage.SumIncomesByCrop"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(quantity * amount), 0) FROM incomes WHERE crop_id = $1`
	var sum float64
	if err := s.DB.QueryRowContext(ctx, query, cropID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return sum, nil
}
