package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SearchTerm normaliza un término de búsqueda: minúsculas, sin tildes y sin
// espacios sobrantes, para que "José  " encuentre registros guardados como "jose".
func SearchTerm(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
