package analyzer

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed stopwords/*.yaml
var stopwordFiles embed.FS

// StopWordSet is a case-insensitive set of stop words.
type StopWordSet struct {
	words map[string]struct{}
}

// stoplistFile is the on-disk stop-word list format.
type stoplistFile struct {
	Terms []string `yaml:"terms"`
}

// NewStopWordSet creates a set from words.
func NewStopWordSet(words []string) *StopWordSet {
	set := &StopWordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		set.Add(w)
	}
	return set
}

// DefaultStopWords returns the built-in list for language.
func DefaultStopWords(language string) (*StopWordSet, error) {
	data, err := stopwordFiles.ReadFile("stopwords/" + strings.ToLower(language) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no built-in stop words for %q: %w", language, err)
	}
	return parseStopWords(data)
}

// LoadStopWords reads a YAML stop-word list ("terms: [...]") from path.
func LoadStopWords(path string) (*StopWordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop words: %w", err)
	}
	return parseStopWords(data)
}

func parseStopWords(data []byte) (*StopWordSet, error) {
	var sl stoplistFile
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("failed to parse stop words: %w", err)
	}
	return NewStopWordSet(sl.Terms), nil
}

// Contains reports whether word is a stop word.
func (s *StopWordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Add adds a word to the set.
func (s *StopWordSet) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		s.words[word] = struct{}{}
	}
}

// Remove removes a word from the set.
func (s *StopWordSet) Remove(word string) {
	delete(s.words, strings.ToLower(word))
}

// Len returns the number of stop words.
func (s *StopWordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
