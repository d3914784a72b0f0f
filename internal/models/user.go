// Package models содержит доменные структуры сервиса подписок на журналы,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// User представляет зарегистрированного пользователя системы.
// Хэш пароля никогда не сериализуется в ответы API.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"` // Имя пользователя (уникальное)
	Email        string `json:"email"`    // Электронная почта (уникальная)
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"` // false после мягкого удаления
}

// DummyUser используется для приёма данных регистрации из JSON-запроса.
type DummyUser struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
