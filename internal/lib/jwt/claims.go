// Package jwt реализует выпуск и проверку JWT токенов идентичности.
//
// Токен подтверждает личность пользователя блога: в claims хранятся его
// uid и имя. Maker определяет интерфейс выпуска и разбора токена,
// MakerImpl — конкретная реализация с секретным ключом и сроком жизни.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для выпуска и разбора токенов идентичности.
type Maker interface {
	// GenerateToken выпускает подписанный токен для пользователя с uid и именем.
	GenerateToken(uid, name string) (string, error)
	// ParseToken проверяет подпись и срок жизни токена и возвращает *CustomClaims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL). Нулевой TTL означает бессрочный токен.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена, 0 — без срока.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
