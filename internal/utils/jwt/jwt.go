package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken токен не прошел проверку
var ErrInvalidToken = errors.New("invalid token")

// Claims содержит идентификатор счета покупателя
type Claims struct {
	AccountID int64 `json:"account_id"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены сессии.
// Сама сессия живет во внешней системе, здесь только поиск счета по токену.
type Manager struct {
	secretKey []byte
	tokenTTL  time.Duration
	issuer    string
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		issuer:    "coin-payments",
	}
}

// Issue выпускает токен для счета
func (m *Manager) Issue(accountID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// AccountID проверяет токен и возвращает идентификатор счета
func (m *Manager) AccountID(tokenString string) (int64, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.AccountID <= 0 {
		return 0, fmt.Errorf("%w: missing account id", ErrInvalidToken)
	}

	return claims.AccountID, nil
}
