package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

// buildCropWhere собирает условие отбора посевов по фильтру.
// Диапазон дат применяется к дате посадки самого посева.
func buildCropWhere(filter models.CropFilter) (string, []any) {
	where := "user_uid = $1"
	args := []any{filter.UserUID}

	if filter.CropID != nil {
		args = append(args, *filter.CropID)
		where += fmt.Sprintf(" AND id = $%d", len(args))
	}
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

// CreateCrop вставляет новую запись посева и возвращает её ID.
func (s *Storage) CreateCrop(ctx context.Context, crop models.Crop) (string, error) {
	const op = "storage.CreateCrop"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO crops (user_uid, name, acres, date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		crop.UserUID, crop.Name, crop.Acres, crop.Date).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveCrop удаляет посев по ID, принадлежащий указанному пользователю,
// и возвращает количество удалённых строк.
func (s *Storage) RemoveCrop(ctx context.Context, id, userUID string) (int, error) {
	const op = "storage.RemoveCrop"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM crops WHERE id = $1 AND user_uid = $2`
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

// CountCrops возвращает количество посевов, подходящих под фильтр.
func (s *Storage) CountCrops(ctx context.Context, filter models.CropFilter) (int, error) {
	const op = "storage.CountCrops"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	where, args := buildCropWhere(filter)
	query := `SELECT COUNT(*) FROM crops WHERE ` + where

	var total int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListCrops возвращает страницу посевов пользователя по фильтру с пагинацией.
func (s *Storage) ListCrops(ctx context.Context, filter models.CropFilter, limit, offset int) ([]*models.Crop, error) {
	const op = "storage.ListCrops"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	where, args := buildCropWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT id, user_uid, name, acres, date, created_at
			  FROM crops
			  WHERE %s
			  ORDER BY id
			  LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Crop
	for rows.Next() {
		var item models.Crop
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Name, &item.Acres,
			&item.Date, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// OwnsCrop проверяет, что посев существует и принадлежит пользователю.
func (s *Storage) OwnsCrop(ctx context.Context, cropID, userUID string) (bool, error) {
	const op = "storage.OwnsCrop"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (SELECT 1 FROM crops WHERE id = $1 AND user_uid = $2)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, cropID, userUID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
