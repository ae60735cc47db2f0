// Package models содержит доменные структуры, описывающие посев (crop),
// а также вспомогательные типы для работы с данными из внешних источников
// (например, JSON-запросы и сводные ответы со списком посевов).
package models

import "time"

// Crop представляет собой запись об одном посевном цикле,
// используемую в бизнес-логике и хранилище.
type Crop struct {
	ID        string    // Идентификатор посева
	UserUID   string    // Идентификатор пользователя-владельца
	Name      string    // Название культуры
	Acres     int       // Площадь в акрах
	Date      time.Time // Дата посадки
	CreatedAt time.Time // Дата создания записи
}

// DummyCrop используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Crop.
// Дата приходит в виде строки, чтобы её можно было валидировать и парсить вручную.
type DummyCrop struct {
	Name  string `json:"name" validate:"required"` // Название культуры
	Acres int    `json:"acres"`                    // Площадь в акрах, ноль допустим
	Date  string `json:"date" validate:"required"` // Дата посадки в формате 2006-01-02
}

// CropSummary — сводная запись по одному посеву: суммы расходов,
// доходов и прибыль. Прибыль вычисляется на чтении и никогда не хранится.
type CropSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Acre          int     `json:"acre"`
	ExpenseAmount float64 `json:"expenseAmount"`
	IncomeAmount  float64 `json:"incomeAmount"`
	Profit        float64 `json:"profit"`
}

// CropSummaryPage — страница сводных записей с метаданными пагинации.
type CropSummaryPage struct {
	CurrentPage  int           `json:"currentPage"`
	TotalPages   int           `json:"totalPages"`
	TotalRecords int           `json:"totalRecords"`
	Data         []CropSummary `json:"data"`
}
