package token_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conap-gt/guardarecursos-api/pkg/token"
)

// El token plano debe tener tres segmentos y el central debe ser JSON
// {id,email,rol,iat,exp} en base64url, exp = iat + TTL.
func TestPlainCodec_FormatoDeTresSegmentos(t *testing.T) {
	codec := &token.PlainCodec{TTL: 24 * time.Hour}
	tok, err := codec.Issue("u-1", "admin@conap.gob.gt", "Administrador")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3, "el token debe tener tres segmentos")

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err, "el segmento central debe ser base64url válido")

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "u-1", payload["id"])
	assert.Equal(t, "admin@conap.gob.gt", payload["email"])
	assert.Equal(t, "Administrador", payload["rol"])

	iat := int64(payload["iat"].(float64))
	exp := int64(payload["exp"].(float64))
	assert.Equal(t, iat+(24*time.Hour).Milliseconds(), exp, "exp debe ser iat + 24h")
}

func TestPlainCodec_RoundTrip(t *testing.T) {
	codec := &token.PlainCodec{TTL: time.Hour}
	tok, err := codec.Issue("u-9", "g@conap.gob.gt", "Guardarecurso")
	require.NoError(t, err)

	claims, err := codec.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-9", claims.ID)
	assert.Equal(t, "g@conap.gob.gt", claims.Email)
	assert.Equal(t, "Guardarecurso", claims.Rol)
}

// Un token cuya expiración ya pasó debe fallar al decodificar.
func TestPlainCodec_Expirado(t *testing.T) {
	codec := &token.PlainCodec{TTL: -time.Millisecond}
	tok, err := codec.Issue("u-1", "a@b.c", "Coordinador")
	require.NoError(t, err)

	_, err = codec.Decode(tok)
	assert.ErrorIs(t, err, token.ErrExpirado)
}

func TestPlainCodec_Malformado(t *testing.T) {
	codec := &token.PlainCodec{TTL: time.Hour}
	casos := []string{
		"",
		"solo-un-segmento",
		"dos.segmentos",
		"a.!!!no-es-base64!!!.c",
		"a." + base64.RawURLEncoding.EncodeToString([]byte("no es json")) + ".c",
	}
	for _, tok := range casos {
		_, err := codec.Decode(tok)
		assert.Error(t, err, "token %q debe ser rechazado", tok)
	}
}

func TestHMACCodec_RoundTripYFirma(t *testing.T) {
	codec := &token.HMACCodec{Secret: "secreto-de-prueba", Issuer: "test", TTL: time.Hour}
	tok, err := codec.Issue("u-2", "c@conap.gob.gt", "Coordinador")
	require.NoError(t, err)

	claims, err := codec.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-2", claims.ID)
	assert.Equal(t, "Coordinador", claims.Rol)

	// Otro secret no debe poder validar el token.
	otro := &token.HMACCodec{Secret: "otro-secreto", TTL: time.Hour}
	_, err = otro.Decode(tok)
	assert.ErrorIs(t, err, token.ErrInvalido)
}

func TestHMACCodec_Expirado(t *testing.T) {
	codec := &token.HMACCodec{Secret: "secreto", TTL: -time.Minute}
	tok, err := codec.Issue("u-3", "x@y.z", "Guardarecurso")
	require.NoError(t, err)

	_, err = codec.Decode(tok)
	assert.ErrorIs(t, err, token.ErrExpirado)
}
