package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Field пара ключ-значение канонической строки подписи
type Field struct {
	Key   string
	Value string
}

// Canonical собирает строку вида k1=v1&k2=v2 строго в переданном порядке.
// Порядок полей является частью протокола с провайдером.
func Canonical(fields ...Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}

// Signer вычисляет и проверяет HMAC-SHA256 подписи
type Signer struct {
	secret []byte
}

// NewSigner создает Signer с общим секретом
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign возвращает подпись в нижнем регистре hex
func (s *Signer) Sign(raw string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает подпись за постоянное время.
// Пустая или не-hex подпись считается неверной.
func (s *Signer) Verify(raw, signature string) bool {
	if signature == "" {
		return false
	}

	got, err := hex.DecodeString(strings.ToLower(signature))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(raw))
	return hmac.Equal(got, mac.Sum(nil))
}
