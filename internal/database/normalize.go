package database

import "strings"

var turkishFolder = strings.NewReplacer(
	"ı", "i", "İ", "i", "ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u", "ş", "s", "Ş", "s",
	"ö", "o", "Ö", "o", "ç", "c", "Ç", "c",
)

// normalizeText lowercases and folds Turkish characters so that user-typed
// names like "Kitap Oku" match stored names like "kitap oku" or "kıtap oku".
func normalizeText(text string) string {
	return strings.ToLower(turkishFolder.Replace(text))
}

// matchesNormalized reports whether search and candidate match after folding,
// first exactly, then by substring in either direction.
func matchesNormalized(search, candidate string) bool {
	s := normalizeText(search)
	c := normalizeText(candidate)
	if s == "" || c == "" {
		return false
	}
	if s == c {
		return true
	}
	return strings.Contains(c, s) || strings.Contains(s, c)
}
