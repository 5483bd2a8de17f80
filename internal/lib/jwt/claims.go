// Package jwt implementa a geração e o parsing de tokens JWT de sessão
// com claims próprios da plataforma.
//
// Maker define a interface de criação e validação dos tokens; MakerImpl é a
// implementação concreta com chave secreta e tempo de vida configuráveis.
package jwt

import (
	"time"
)

// Maker descreve a interface para geração e parsing de tokens de sessão.
type Maker interface {
	// GenerateToken cria um token assinado com uid, e-mail e nível de acesso.
	GenerateToken(userUID, email string, access int) (string, error)
	// ParseToken valida o token e devolve os claims extraídos.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implementa Maker usando assinatura HMAC com chave secreta
// e tempo de vida (TTL) fixo por token.
type MakerImpl struct {
	secretKey string        // Chave secreta de assinatura
	tokenTTL  time.Duration // Tempo de vida do token
}

// NewJWTMaker cria um novo MakerImpl com a chave secreta e o TTL informados.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
