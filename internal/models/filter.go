// Package models содержит структуры фильтров, которые передаются
// в слой доступа к данным при выборке посевов и дочерних записей.
package models

import "time"

// CropFilter представляет параметры отбора посевов пользователя.
// Диапазон дат применяется только к дате самого посева,
// а не к датам его расходов и доходов.
type CropFilter struct {
	UserUID string     // Идентификатор владельца
	CropID  *string    // Идентификатор посева (nil, если фильтра нет)
	From    *time.Time // Нижняя граница даты посадки
	To      *time.Time // Верхняя граница даты посадки
}

// DummyCropFilter используется для приёма параметров фильтра из query-строки
// до их валидации и преобразования в CropFilter. Даты приходят строками.
type DummyCropFilter struct {
	FromDate   string // Дата "с" в формате 2006-01-02
	ToDate     string // Дата "по" в формате 2006-01-02
	CropID     string // Идентификатор посева (опционально)
	PageNumber int    // Номер страницы, по умолчанию 1
}

// EntryFilter представляет параметры отбора расходов или доходов одного посева.
type EntryFilter struct {
	CropID string     // Идентификатор посева
	From   *time.Time // Нижняя граница даты записи
	To     *time.Time // Верхняя граница даты записи
}
