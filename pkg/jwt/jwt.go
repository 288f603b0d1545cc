package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalido é devolvido para qualquer falha de validação: assinatura
// incorreta, token malformado, expirado ou sem subject. O chamador não deve
// conseguir distinguir qual verificação falhou.
var ErrTokenInvalido = errors.New("token inválido ou expirado")

// Claims inclui os claims registrados do JWT. O subject carrega o email do
// usuário autenticado; nenhum claim customizado é necessário.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate gera um token JWT HS256 assinado com subject = email.
// expMinutes <= 0 usa o valor mesmo assim (útil em testes para gerar tokens já expirados).
func Generate(secret, email, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve o subject (email).
// Qualquer falha (assinatura, formato, expiração, subject ausente)
// devolve ErrTokenInvalido, sem vazar o motivo.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrTokenInvalido
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalido
	}
	return claims.Subject, nil
}
