package models

import "errors"

// Сентинельные ошибки доменного уровня. Репозитории и сервисы оборачивают их
// через fmt.Errorf("%s: %w", op, err), обработчики распознают через errors.Is
// и переводят в HTTP-статусы.
var (
	// ErrNotFound — запись не найдена по id или ключу поиска.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (дубликат подписки,
	// занятый username или email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput — нарушение доменного правила (неположительная цена,
	// некорректный период продления).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials — неверные учетные данные или невалидный токен.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
