package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT indica que la credencial no tiene formato JWT; el cliente la trata como opaca.
var ErrNotJWT = errors.New("jwt: credencial opaca")

// Claims refleja los claims que emite el backend de la tienda para un administrador.
type Claims struct {
	jwt.RegisteredClaims
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"` // "super_admin" | "inventory" | "order_manager" | "viewer"
}

// Generate firma un token HS256 con los claims del backend. Se usa en pruebas y herramientas locales.
func Generate(secret string, adminID uint, email, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		AdminID: adminID,
		Email:   email,
		Role:    role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Inspect decodifica los claims SIN verificar la firma: el cliente no conoce el secret,
// solo lo usa para saber si la credencial ya expiró antes de gastar una llamada de red.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}
	return claims, nil
}

// Expired indica si la credencial tiene exp y ya pasó respecto a now.
// Un token sin exp nunca se considera expirado.
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}
