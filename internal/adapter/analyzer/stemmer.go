package analyzer

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
)

// SnowballStemmer stems words with the Snowball algorithm for one language.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer creates a stemmer for language ("russian", "english", ...).
func NewSnowballStemmer(language string) *SnowballStemmer {
	return &SnowballStemmer{language: strings.ToLower(language)}
}

// Stem returns the root form of word. Snowball's own stop words are stemmed
// too, so был, была and были share one stem.
func (s *SnowballStemmer) Stem(word string) (string, error) {
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil {
		return "", fmt.Errorf("failed to stem %q: %w", word, err)
	}
	return stemmed, nil
}

// Language returns the stemmer's language.
func (s *SnowballStemmer) Language() string {
	return s.language
}
