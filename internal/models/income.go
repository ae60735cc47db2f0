package models

import "time"

// Income представляет запись о доходе, привязанную к посеву.
// Выручка по записи считается как quantity * amount.
type Income struct {
	ID        string    // Идентификатор дохода
	CropID    string    // Идентификатор посева
	Quantity  float64   // Количество проданной продукции
	Amount    float64   // Цена за единицу
	Date      time.Time // Дата дохода
	Notes     *string   // Примечание (опционально)
	CreatedAt time.Time // Дата создания записи
}

// DummyIncome используется для приёма данных из JSON-запроса
// до их валидации и преобразования в Income.
type DummyIncome struct {
	CropID   string  `json:"cropId" validate:"required,uuid"`
	Quantity float64 `json:"quantity"`                 // Количество, ноль допустим
	Amount   float64 `json:"amount"`                   // Цена за единицу, ноль допустим
	Date     string  `json:"date" validate:"required"` // Дата в формате 2006-01-02
	Notes    string  `json:"notes,omitempty" validate:"omitempty"`
}

// IncomeInfo — представление дохода в ответе списка.
type IncomeInfo struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Quantity float64   `json:"quantity"`
	Amount   float64   `json:"amount"`
	Notes    *string   `json:"notes,omitempty"`
}
