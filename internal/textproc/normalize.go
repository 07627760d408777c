// Package textproc prepares email text for the classifier prompt.
package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLen is the shortest token kept by Normalize.
const minTokenLen = 3

// Normalize lowercases text, strips punctuation, digits and stop words, and
// returns the remaining tokens joined by single spaces. It is pure and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return strings.Join(Tokens(text), " ")
}

// Tokens returns the tokens Normalize would join.
func Tokens(text string) []string {
	fields := strings.Fields(clean(strings.ToLower(text)))
	tokens := fields[:0]
	for _, tok := range fields {
		if keep(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// clean maps every rune that is not a letter to a space, which removes
// punctuation, symbols and digit runs in one pass. Whitespace collapses later
// in strings.Fields, so no token can be pure punctuation or pure digits.
func clean(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return ' '
	}, text)
}

func keep(tok string) bool {
	if utf8.RuneCountInString(tok) < minTokenLen {
		return false
	}
	return !IsStopWord(tok)
}

