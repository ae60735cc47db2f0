package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crop-ledger/internal/models"
)

func TestStorage_CreateCrop(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "Test Farmer", "farmer@example.com", "hashedpassword")

	gotID, err := storage.CreateCrop(context.Background(), models.Crop{
		UserUID: userUID,
		Name:    "Wheat",
		Acres:   12,
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)

	verification := NewTestVerification(storage)
	verification.VerifyCropExists(t, gotID)
}

func TestStorage_RemoveCrop(t *testing.T) {
	plantDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		wantRowsAffected int
		setup            func(t *testing.T, factory *TestDataFactory) (cropID, userUID string)
	}{
		{
			name:             "успешное удаление своего посева",
			wantRowsAffected: 1,
			setup: func(t *testing.T, factory *TestDataFactory) (string, string) {
				userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
				cropID := factory.CreateCrop(t, userUID, "Wheat", 12, plantDate)
				return cropID, userUID
			},
		},
		{
			name:             "чужой посев не удаляется",
			wantRowsAffected: 0,
			setup: func(t *testing.T, factory *TestDataFactory) (string, string) {
				ownerUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
				otherUID := factory.CreateUser(t, "Other", "other@example.com", "hash")
				cropID := factory.CreateCrop(t, ownerUID, "Wheat", 12, plantDate)
				return cropID, otherUID
			},
		},
		{
			name:             "несуществующий посев",
			wantRowsAffected: 0,
			setup: func(t *testing.T, factory *TestDataFactory) (string, string) {
				userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
				return uuid.New().String(), userUID
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			cropID, userUID := tt.setup(t, factory)

			got, err := storage.RemoveCrop(context.Background(), cropID, userUID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRowsAffected, got)
		})
	}
}

func TestStorage_CountAndListCrops(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	otherUID := factory.CreateUser(t, "Other", "other@example.com", "hash")

	janCrop := factory.CreateCrop(t, userUID, "Wheat", 12, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	factory.CreateCrop(t, userUID, "Corn", 5, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
	factory.CreateCrop(t, userUID, "Rice", 3, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	factory.CreateCrop(t, otherUID, "Barley", 7, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()

	t.Run("только посевы владельца", func(t *testing.T) {
		total, err := storage.CountCrops(ctx, models.CropFilter{UserUID: userUID})
		require.NoError(t, err)
		assert.Equal(t, 3, total)

		crops, err := storage.ListCrops(ctx, models.CropFilter{UserUID: userUID}, 5, 0)
		require.NoError(t, err)
		assert.Len(t, crops, 3)
	})

	t.Run("диапазон дат применяется к дате посадки", func(t *testing.T) {
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
		filter := models.CropFilter{UserUID: userUID, From: &from, To: &to}

		total, err := storage.CountCrops(ctx, filter)
		require.NoError(t, err)
		// Посев от 2025-02-01 остается за пределами диапазона
		assert.Equal(t, 2, total)
	})

	t.Run("фильтр по идентификатору посева", func(t *testing.T) {
		filter := models.CropFilter{UserUID: userUID, CropID: &janCrop}

		crops, err := storage.ListCrops(ctx, filter, 5, 0)
		require.NoError(t, err)
		require.Len(t, crops, 1)
		assert.Equal(t, "Wheat", crops[0].Name)
		assert.Equal(t, 12, crops[0].Acres)
	})

	t.Run("пагинация", func(t *testing.T) {
		firstPage, err := storage.ListCrops(ctx, models.CropFilter{UserUID: userUID}, 2, 0)
		require.NoError(t, err)
		assert.Len(t, firstPage, 2)

		secondPage, err := storage.ListCrops(ctx, models.CropFilter{UserUID: userUID}, 2, 2)
		require.NoError(t, err)
		assert.Len(t, secondPage, 1)
	})
}

func TestStorage_OwnsCrop(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ownerUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	otherUID := factory.CreateUser(t, "Other", "other@example.com", "hash")
	cropID := factory.CreateCrop(t, ownerUID, "Wheat", 12, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()

	owns, err := storage.OwnsCrop(ctx, cropID, ownerUID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = storage.OwnsCrop(ctx, cropID, otherUID)
	require.NoError(t, err)
	assert.False(t, owns)

	owns, err = storage.OwnsCrop(ctx, uuid.New().String(), ownerUID)
	require.NoError(t, err)
	assert.False(t, owns)
}

func TestStorage_SumExpensesByCrop(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	cropID := factory.CreateCrop(t, userUID, "Wheat", 12, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	emptyCropID := factory.CreateCrop(t, userUID, "Corn", 5, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))

	factory.CreateExpense(t, cropID, "fertilizer", time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), 100)
	factory.CreateExpense(t, cropID, "labor", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), 50)

	ctx := context.Background()

	sum, err := storage.SumExpensesByCrop(ctx, cropID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, sum)

	sum, err = storage.SumExpensesByCrop(ctx, emptyCropID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum)
}

func TestStorage_SumIncomesByCrop(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	cropID := factory.CreateCrop(t, userUID, "Wheat", 12, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	// Выручка: 10*5 + 2*20 = 90
	factory.CreateIncome(t, cropID, 10, 5, time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC))
	factory.CreateIncome(t, cropID, 2, 20, time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC))

	sum, err := storage.SumIncomesByCrop(context.Background(), cropID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, sum)
}

func TestStorage_RemoveExpense(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ownerUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	otherUID := factory.CreateUser(t, "Other", "other@example.com", "hash")
	cropID := factory.CreateCrop(t, ownerUID, "Wheat", 12, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	expenseID := factory.CreateExpense(t, cropID, "fertilizer", time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), 100)

	ctx := context.Background()

	// Чужой пользователь не может удалить расход
	got, err := storage.RemoveExpense(ctx, expenseID, otherUID)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = storage.RemoveExpense(ctx, expenseID, ownerUID)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	verification := NewTestVerification(storage)
	verification.VerifyExpenseCount(t, cropID, 0)
}

func TestStorage_RemoveIncome(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ownerUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	otherUID := factory.CreateUser(t, "Other", "other@example.com", "hash")
	cropID := factory.CreateCrop(t, ownerUID, "Wheat", 12, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	incomeID := factory.CreateIncome(t, cropID, 10, 5, time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()

	got, err := storage.RemoveIncome(ctx, incomeID, otherUID)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = storage.RemoveIncome(ctx, incomeID, ownerUID)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	verification := NewTestVerification(storage)
	verification.VerifyIncomeCount(t, cropID, 0)
}

func TestStorage_ListExpenses(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	cropID := factory.CreateCrop(t, userUID, "Wheat", 12, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	factory.CreateExpense(t, cropID, "ploughing", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 30)
	factory.CreateExpense(t, cropID, "fertilizer", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 100)
	factory.CreateExpense(t, cropID, "labor", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 50)

	ctx := context.Background()

	t.Run("новые даты первыми", func(t *testing.T) {
		got, err := storage.ListExpenses(ctx, models.EntryFilter{CropID: cropID})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "labor", got[0].Type)
		assert.Equal(t, "fertilizer", got[1].Type)
		assert.Equal(t, "ploughing", got[2].Type)
	})

	t.Run("диапазон дат", func(t *testing.T) {
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

		got, err := storage.ListExpenses(ctx, models.EntryFilter{CropID: cropID, From: &from, To: &to})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestStorage_ListIncomes(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	cropID := factory.CreateCrop(t, userUID, "Wheat", 12, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	factory.CreateIncome(t, cropID, 10, 5, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	factory.CreateIncome(t, cropID, 2, 20, time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC))

	got, err := storage.ListIncomes(context.Background(), models.EntryFilter{CropID: cropID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0].Quantity)
	assert.Equal(t, 10.0, got[1].Quantity)
}

func TestStorage_RegisterUserAndGetByEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	uid, err := storage.RegisterUser(ctx, models.User{
		Name:         "Test Farmer",
		Email:        "farmer@example.com",
		PasswordHash: "hashedpassword",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	t.Run("поиск по email", func(t *testing.T) {
		user, err := storage.GetUserByEmail(ctx, "farmer@example.com")
		require.NoError(t, err)
		assert.Equal(t, uid, user.UID)
		assert.Equal(t, "Test Farmer", user.Name)
		assert.Equal(t, "hashedpassword", user.PasswordHash)
	})

	t.Run("незарегистрированный email", func(t *testing.T) {
		user, err := storage.GetUserByEmail(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, user)
	})

	t.Run("повторная регистрация на занятый email", func(t *testing.T) {
		_, err := storage.RegisterUser(ctx, models.User{
			Name:         "Another Farmer",
			Email:        "farmer@example.com",
			PasswordHash: "otherhash",
		})
		require.Error(t, err)
	})
}

func TestStorage_CascadeDeleteCropEntries(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "Owner", "owner@example.com", "hash")
	cropID := factory.CreateCrop(t, userUID, "Wheat", 12, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	factory.CreateExpense(t, cropID, "fertilizer", time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), 100)
	factory.CreateIncome(t, cropID, 10, 5, time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC))

	got, err := storage.RemoveCrop(context.Background(), cropID, userUID)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	verification := NewTestVerification(storage)
	verification.VerifyCropDeleted(t, cropID)
	verification.VerifyExpenseCount(t, cropID, 0)
	verification.VerifyIncomeCount(t, cropID, 0)
}

func TestCheckDatabaseReady(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, storage *Storage)
		wantError    bool
		errorContain string
	}{
		{
			name: "таблицы на месте",
			setup: func(_ *testing.T, _ *Storage) {
				// Схема уже создаётся в setupTestDatabase
			},
			wantError: false,
		},
		{
			name: "таблица crops отсутствует",
			setup: func(t *testing.T, storage *Storage) {
				// Удаляем таблицы в порядке, учитывающем foreign key constraints
				_, err := storage.DB.Exec(`DROP TABLE IF EXISTS incomes CASCADE`)
				require.NoError(t, err)
				_, err = storage.DB.Exec(`DROP TABLE IF EXISTS expenses CASCADE`)
				require.NoError(t, err)
				_, err = storage.DB.Exec(`DROP TABLE IF EXISTS crops CASCADE`)
				require.NoError(t, err)
			},
			wantError:    true,
			errorContain: "missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			tt.setup(t, storage)

			err := CheckDatabaseReady(storage)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContain)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
