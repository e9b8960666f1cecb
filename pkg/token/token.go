// Package token emite y decodifica las credenciales de sesión del sistema.
//
// El formato heredado (PlainCodec) es un string de tres segmentos separados por
// punto cuyo segmento central es un objeto JSON {id,email,rol,iat,exp} en
// base64url, SIN firma: es evidencia de autenticación, no una frontera de
// seguridad. HMACCodec emite los mismos claims como JWT HS256 para despliegues
// que necesiten integridad; ambos implementan Codec, así que el resto del
// código no distingue entre formatos.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Errores de decodificación. Ambos significan "sesión no válida": quien llama
// no debe distinguirlos frente al usuario final.
var (
	ErrInvalido = errors.New("token: credencial malformada")
	ErrExpirado = errors.New("token: credencial expirada")
)

// Claims identidad embebida en la credencial.
type Claims struct {
	ID        string
	Email     string
	Rol       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec contrato de emisión/decodificación. Decode retorna error (nunca pánico)
// ante entrada malformada o expirada.
type Codec interface {
	Issue(id, email, rol string) (string, error)
	Decode(token string) (*Claims, error)
}

// ── Codec heredado (sin firma) ────────────────────────────────────────────────

// encabezado fijo del primer segmento; existe solo para conservar la forma
// de tres partes del formato original.
const plainHeader = `{"alg":"none","typ":"SESION"}`

// plainPayload representación en el alambre del segmento central.
// iat/exp van en milisegundos Unix, como los emitía el sistema original.
type plainPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
	Iat   int64  `json:"iat"`
	Exp   int64  `json:"exp"`
}

// PlainCodec reproduce el token heredado. TTL define la ventana de validez
// (24h en producción). Now es inyectable para pruebas; nil usa time.Now.
type PlainCodec struct {
	TTL time.Duration
	Now func() time.Time
}

func (c *PlainCodec) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Issue emite la credencial de tres segmentos con exp = iat + TTL.
func (c *PlainCodec) Issue(id, email, rol string) (string, error) {
	iat := c.now()
	payload, err := json.Marshal(plainPayload{
		ID:    id,
		Email: email,
		Rol:   rol,
		Iat:   iat.UnixMilli(),
		Exp:   iat.Add(c.TTL).UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(plainHeader)) + "." +
		enc.EncodeToString(payload) + ".", nil
}

// Decode valida forma y vigencia. No hay firma que verificar.
func (c *PlainCodec) Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrInvalido
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalido
	}
	var p plainPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, ErrInvalido
	}
	if p.ID == "" || p.Exp == 0 {
		return nil, ErrInvalido
	}
	claims := &Claims{
		ID:        p.ID,
		Email:     p.Email,
		Rol:       p.Rol,
		IssuedAt:  time.UnixMilli(p.Iat),
		ExpiresAt: time.UnixMilli(p.Exp),
	}
	if c.now().After(claims.ExpiresAt) {
		return nil, ErrExpirado
	}
	return claims, nil
}
