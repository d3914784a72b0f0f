package models

// Plan представляет тариф подписки, привязанный ровно к одному журналу.
// Discount — доля скидки, ожидается в диапазоне [0, 1).
type Plan struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	RenewalPeriod int     `json:"renewal_period"` // Период продления, > 0
	Tier          int     `json:"tier"`
	Discount      float64 `json:"discount"`
	MagazineID    int     `json:"magazine_id"`
}

// DummyPlan используется для приёма данных нового тарифа из JSON-запроса.
type DummyPlan struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	RenewalPeriod int     `json:"renewal_period" validate:"required,gt=0"`
	Tier          int     `json:"tier" validate:"gte=0"`
	Discount      float64 `json:"discount"`
	MagazineID    int     `json:"magazine_id" validate:"required"`
}

// PlanUpdate описывает частичное обновление тарифа.
type PlanUpdate struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	RenewalPeriod *int     `json:"renewal_period" validate:"omitempty,gt=0"`
	Tier          *int     `json:"tier"`
	Discount      *float64 `json:"discount"`
	MagazineID    *int     `json:"magazine_id"`
}
