package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtClaims claims estándar más los campos propios de la aplicación.
type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

// HMACCodec emite los mismos claims que PlainCodec pero como JWT HS256.
// Se activa con TOKEN_MODE=firmado; el secret no puede estar vacío.
type HMACCodec struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

func (c *HMACCodec) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Issue genera un JWT firmado con exp = iat + TTL.
func (c *HMACCodec) Issue(id, email, rol string) (string, error) {
	if c.Secret == "" {
		return "", errors.New("token: secret vacío")
	}
	iat := c.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(c.TTL)),
		},
		Email: email,
		Rol:   rol,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.Secret))
}

// Decode valida firma y vigencia y devuelve los claims de la aplicación.
func (c *HMACCodec) Decode(tokenString string) (*Claims, error) {
	if c.Secret == "" {
		return nil, ErrInvalido
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalido
		}
		return []byte(c.Secret), nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpirado
		}
		return nil, ErrInvalido
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalido
	}
	out := &Claims{
		ID:    claims.Subject,
		Email: claims.Email,
		Rol:   claims.Rol,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
