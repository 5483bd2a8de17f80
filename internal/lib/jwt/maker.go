package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims descreve os dados de sessão carregados no JWT.
type CustomClaims struct {
	UserUID              string `json:"user_uid"` // Identificador do usuário
	Email                string `json:"email"`    // E-mail normalizado
	Access               int    `json:"access"`   // Nível de acesso, 1 = admin
	jwt.RegisteredClaims        // Claims padrão (ExpiresAt, IssuedAt etc.)
}

// GenerateToken cria um JWT assinado com a chave secreta, carregando
// uid, e-mail e nível de acesso do usuário. O tempo de vida é o TTL do Maker.
func (j *MakerImpl) GenerateToken(userUID, email string, access int) (string, error) {
	claims := CustomClaims{
		UserUID: userUID,
		Email:   email,
		Access:  access,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken valida a assinatura e a validade do token e devolve os claims.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
