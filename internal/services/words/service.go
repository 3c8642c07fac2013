package words

import (
	"strings"
	"unicode"
)

// Service provides word acceptance rules for the duel.
// All checks are pure, deterministic, and case-normalized: input is
// lower-cased before evaluation and classified per rune, not per byte.
type Service struct{}

// New creates a new word validation service
func New() *Service {
	return &Service{}
}

const (
	// MinOriginalLength is the minimum rune length of an original word
	MinOriginalLength = 8
	// MaxOriginalLength is the maximum rune length of an original word
	MaxOriginalLength = 30
)

// Normalize lower-cases and trims a submitted word
func (s *Service) Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// IsAcceptableOriginal reports whether word can start a match: non-empty,
// 8 to 30 letters, and nothing but letters (any alphabet, not ASCII-only)
func (s *Service) IsAcceptableOriginal(word string) bool {
	word = s.Normalize(word)
	runes := []rune(word)
	if len(runes) < MinOriginalLength || len(runes) > MaxOriginalLength {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAcceptableMove reports whether word is a legal move against original:
// non-empty, not already played, and its rune multiset is contained in the
// original word's rune multiset
func (s *Service) IsAcceptableMove(word, original string, used []string) bool {
	word = s.Normalize(word)
	if word == "" {
		return false
	}
	for _, u := range used {
		if s.Normalize(u) == word {
			return false
		}
	}
	available := letterCounts(s.Normalize(original))
	for r, n := range letterCounts(word) {
		if n > available[r] {
			return false
		}
	}
	return true
}

func letterCounts(word string) map[rune]int {
	counts := make(map[rune]int, len(word))
	for _, r := range word {
		counts[r]++
	}
	return counts
}

// Interface for dependency injection
type ServiceInterface interface {
	Normalize(word string) string
	IsAcceptableOriginal(word string) bool
	IsAcceptableMove(word, original string, used []string) bool
}

var _ ServiceInterface = (*Service)(nil)
