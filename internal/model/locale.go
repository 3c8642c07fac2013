package model

import "strings"

// Locale selects the user-facing language for a session
type Locale string

const (
	LocaleRu Locale = "ru"
	LocaleEn Locale = "en"
)

// ParseLocale matches a user-entered token against the closed locale set.
// Matching is case-insensitive; unrecognized tokens return false.
func ParseLocale(token string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(token))) {
	case LocaleRu:
		return LocaleRu, true
	case LocaleEn:
		return LocaleEn, true
	}
	return "", false
}
