package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims surrounding whitespace and title-cases each word
// with Brazilian Portuguese rules, so "  tamanho pequeno " becomes
// "Tamanho Pequeno". Applied before validation, uniqueness checks and
// storage.
func NormalizeName(name string) string {
	// cases.Caser is not safe for concurrent use, so build one per call.
	return cases.Title(language.BrazilianPortuguese).String(strings.TrimSpace(name))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
