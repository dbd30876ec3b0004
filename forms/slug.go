package forms

import (
	"strings"
	"unicode"
)

// Türkçe ve yaygın Latin aksanları ASCII karşılığına katlanır; makine adı
// üretirken etiketteki her şey bu tablodan geçer.
var foldTable = map[rune]string{
	'ç': "c", 'Ç': "c",
	'ğ': "g", 'Ğ': "g",
	'ı': "i", 'I': "i",
	'İ': "i",
	'ö': "o", 'Ö': "o",
	'ş': "s", 'Ş': "s",
	'ü': "u", 'Ü': "u",
	'â': "a", 'Â': "a",
	'î': "i", 'Î': "i",
	'û': "u", 'Û': "u",
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'á': "a", 'à': "a", 'ä': "a", 'å': "a",
	'í': "i", 'ì': "i", 'ï': "i",
	'ó': "o", 'ò': "o", 'ô': "o",
	'ú': "u", 'ù': "u",
	'ñ': "n", 'ß': "ss",
}

// DeriveName etiketten makine adını türetir: küçük harf, aksan katlama,
// alfasayısal olmayanlar tek alt çizgiye iner, baş/son alt çizgi atılır.
// Aynı etiket her zaman aynı adı üretir; ad elle düzenlenmez.
func DeriveName(label string) string {
	var b strings.Builder
	for _, r := range label {
		if folded, ok := foldTable[r]; ok {
			b.WriteString(folded)
			continue
		}
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	// ardışık alt çizgileri tekille, uçları kırp
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}
