package analyzer

import (
	"strings"
	"unicode"
)

// Preprocess lowercases text and replaces every rune that is not a word
// rune, whitespace or hyphen with a single space. Replaced runes map one to
// one, so rune offsets computed on the result line up with the input.
func Preprocess(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if isWordRune(r) || unicode.IsSpace(r) || isHyphen(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) || r == '_'
}

func isHyphen(r rune) bool {
	return r == '-' || r == '–'
}

// IsAlnum reports whether word is non-empty and made only of letters and
// digits.
func IsAlnum(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
