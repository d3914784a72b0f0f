package models

import "time"

// Subscription связывает пользователя, журнал и тариф.
// Price — снимок цены на момент создания или последнего обновления:
// base_price * (1 - discount).
type Subscription struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	MagazineID  int       `json:"magazine_id"`
	PlanID      int       `json:"plan_id"`
	Price       float64   `json:"price"`
	RenewalDate time.Time `json:"renewal_date"`
	IsActive    bool      `json:"is_active"` // false после мягкого удаления
}

// DummySubscription используется для приёма данных новой подписки из JSON-запроса.
// Цена не принимается от клиента, она вычисляется сервисом.
type DummySubscription struct {
	UserID      int       `json:"user_id" validate:"required"`
	MagazineID  int       `json:"magazine_id" validate:"required"`
	PlanID      int       `json:"plan_id" validate:"required"`
	RenewalDate time.Time `json:"renewal_date" validate:"required"`
}

// SubscriptionUpdate описывает частичное обновление подписки.
// Смена журнала или тарифа приводит к пересчёту цены.
type SubscriptionUpdate struct {
	UserID      *int       `json:"user_id"`
	MagazineID  *int       `json:"magazine_id"`
	PlanID      *int       `json:"plan_id"`
	RenewalDate *time.Time `json:"renewal_date"`
}
