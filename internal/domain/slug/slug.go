// Package slug deriva identificadores aptos para URL a partir de nombres libres.
// Se usa para generar el código (clave primaria) de una empresa desde su nombre.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letras que NFKD no descompone en base + diacrítico.
var specials = strings.NewReplacer(
	"&", "and",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
)

// Make convierte name en un slug: minúsculas ASCII, palabras separadas por un único '-'.
//
// Reglas:
//   - los diacríticos se eliminan ("Café" → "cafe") y '&' se lee como "and" ("AT&T" → "atandt");
//   - espacios y '-' separan palabras (las corridas colapsan en un solo '-');
//   - cualquier otro carácter se descarta, '_' incluido ("2.0!" → "20", "foo_bar" → "foobar");
//   - sin '-' al inicio ni al final.
//
// Es una función pura: el mismo nombre produce siempre el mismo slug. Puede devolver ""
// si el nombre no contiene letras ni dígitos.
func Make(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, specials.Replace(name))
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	sep := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if sep && b.Len() > 0 {
				b.WriteByte('-')
			}
			sep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			sep = true
		}
	}
	return b.String()
}
