package models

import "time"

// Expense представляет запись о расходе, привязанную к посеву.
type Expense struct {
	ID        string    // Идентификатор расхода
	CropID    string    // Идентификатор посева
	Type      string    // Тип расхода из фиксированного перечня
	Date      time.Time // Дата расхода
	Amount    float64   // Сумма расхода
	Notes     *string   // Примечание (опционально)
	CreatedAt time.Time // Дата создания записи
}

// DummyExpense используется для приёма данных из JSON-запроса
// до их валидации и преобразования в Expense.
type DummyExpense struct {
	CropID string  `json:"cropId" validate:"required,uuid"`
	Type   string  `json:"type" validate:"required,oneof=ploughing planting fertilizer pesticide irrigation harvesting labor others"`
	Date   string  `json:"date" validate:"required"` // Дата в формате 2006-01-02
	Amount float64 `json:"amount"`                   // Сумма расхода, ноль допустим
	Notes  string  `json:"notes,omitempty" validate:"omitempty"`
}

// ExpenseInfo — представление расхода в ответе списка.
type ExpenseInfo struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Notes  *string   `json:"notes,omitempty"`
}
