package models

// Magazine представляет журнал, на планы которого оформляются подписки.
type Magazine struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"` // Базовая цена, неотрицательная
}

// DummyMagazine используется для приёма данных нового журнала из JSON-запроса.
type DummyMagazine struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
}

// MagazineUpdate описывает частичное обновление журнала:
// nil-поля остаются без изменений.
type MagazineUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price" validate:"omitempty,gte=0"`
}
