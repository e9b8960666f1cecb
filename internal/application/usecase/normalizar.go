package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone a NFD, elimina marcas combinantes y recompone.
// Así "Petén" y "peten" coinciden en las búsquedas de texto.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar prepara un string para comparación de búsqueda: minúsculas y sin
// tildes. Si la transformación falla se degrada a solo minúsculas.
func normalizar(s string) string {
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// contiene búsqueda de subcadena normalizada. Término vacío coincide siempre.
func contiene(campo, termino string) bool {
	if termino == "" {
		return true
	}
	return strings.Contains(normalizar(campo), normalizar(termino))
}
