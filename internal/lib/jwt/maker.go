// Package jwt реализует генерацию и парсинг JWT токенов доступа и обновления.
//
// Maker определяет интерфейс для создания и проверки токенов с username
// в качестве субъекта. MakerImpl — конкретная реализация с использованием
// секретного ключа HS256 и отдельных TTL для access и refresh токенов.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateAccessToken создает короткоживущий токен доступа.
	GenerateAccessToken(username string) (string, error)
	// GenerateRefreshToken создает долгоживущий токен обновления.
	GenerateRefreshToken(username string) (string, error)
	// ParseToken проверяет подпись и срок действия и возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токенов.
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов
	accessTTL  time.Duration // Время жизни токена доступа
	refreshTTL time.Duration // Время жизни токена обновления
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
