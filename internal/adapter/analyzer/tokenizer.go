package analyzer

import (
	"strings"
	"unicode"
)

// SentenceSplitter splits text on terminal punctuation. A period does not
// end a sentence after a known abbreviation, after a single letter, or when
// the next word starts in lower case.
type SentenceSplitter struct {
	abbreviations map[string]struct{}
}

// NewSentenceSplitter creates a splitter that ignores the given abbreviations.
func NewSentenceSplitter(abbreviations []string) *SentenceSplitter {
	abbr := make(map[string]struct{}, len(abbreviations))
	for _, a := range abbreviations {
		abbr[strings.ToLower(a)] = struct{}{}
	}
	return &SentenceSplitter{abbreviations: abbr}
}

// Sentences returns the trimmed, non-empty sentences of text.
func (s *SentenceSplitter) Sentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	emit := func(end int) {
		sentence := strings.TrimSpace(string(runes[start:end]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		runStart := i
		for i+1 < len(runes) && (isTerminator(runes[i+1]) || isCloser(runes[i+1])) {
			i++
		}
		end := i + 1
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			continue
		}
		if s.isSingleDot(runes, runStart, end) && !s.periodEndsSentence(runes, runStart, end) {
			continue
		}
		emit(end)
	}
	emit(len(runes))

	return sentences
}

func (s *SentenceSplitter) isSingleDot(runes []rune, runStart, end int) bool {
	dots := 0
	for _, r := range runes[runStart:end] {
		if r == '.' {
			dots++
		} else if isTerminator(r) {
			return false
		}
	}
	return dots == 1
}

func (s *SentenceSplitter) periodEndsSentence(runes []rune, dot, end int) bool {
	// word before the period
	j := dot
	for j > 0 && (isWordRune(runes[j-1]) || runes[j-1] == '.') {
		j--
	}
	prev := strings.ToLower(string(runes[j:dot]))
	if _, ok := s.abbreviations[prev]; ok {
		return false
	}
	if i := strings.LastIndexByte(prev, '.'); i >= 0 {
		prev = prev[i+1:]
		if _, ok := s.abbreviations[prev]; ok {
			return false
		}
	}
	if len([]rune(prev)) == 1 && unicode.IsLetter([]rune(prev)[0]) {
		return false
	}

	// first rune of the next word
	k := end
	for k < len(runes) && unicode.IsSpace(runes[k]) {
		k++
	}
	if k < len(runes) && unicode.IsLower(runes[k]) {
		return false
	}
	return true
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}

// WordSplitter splits a sentence into word tokens and punctuation tokens.
// Hyphens between word runes stay inside the word; runs of the same
// punctuation rune form one token.
type WordSplitter struct{}

// NewWordSplitter creates a new WordSplitter.
func NewWordSplitter() *WordSplitter {
	return &WordSplitter{}
}

// Words returns the tokens of sentence in order.
func (w *WordSplitter) Words(sentence string) []string {
	runes := []rune(sentence)
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case isHyphen(r) && current.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			j := i
			for j+1 < len(runes) && runes[j+1] == r {
				j++
			}
			tokens = append(tokens, string(runes[i:j+1]))
			i = j
		}
	}
	flush()

	return tokens
}
