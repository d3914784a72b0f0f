package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Тип токена, хранится в claims и проверяется при обновлении.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims описывает данные, хранящиеся в JWT.
type Claims struct {
	Username             string `json:"username"`   // Имя пользователя (субъект)
	TokenType            string `json:"token_type"` // access или refresh
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// GenerateAccessToken создает токен доступа с субъектом username,
// подписывая его секретным ключом. Время жизни определяется accessTTL.
func (j *MakerImpl) GenerateAccessToken(username string) (string, error) {
	return j.generate(username, TokenTypeAccess, j.accessTTL)
}

// GenerateRefreshToken создает токен обновления, используемый только
// для выпуска новых токенов доступа.
func (j *MakerImpl) GenerateRefreshToken(username string) (string, error) {
	return j.generate(username, TokenTypeRefresh, j.refreshTTL)
}

func (j *MakerImpl) generate(username, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия,
// возвращает Claims, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
