package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"wordlens/internal/domain"
	"wordlens/internal/port"
)

// TokenAdapter turns preprocessed text into positioned, stemmed tokens using
// external sentence/word tokenizers and a stemmer.
type TokenAdapter struct {
	sentences port.SentenceTokenizer
	words     port.WordTokenizer
	stemmer   port.Stemmer
}

// NewTokenAdapter creates a TokenAdapter from its collaborators.
func NewTokenAdapter(sentences port.SentenceTokenizer, words port.WordTokenizer, stemmer port.Stemmer) *TokenAdapter {
	return &TokenAdapter{
		sentences: sentences,
		words:     words,
		stemmer:   stemmer,
	}
}

// Tokenize returns the tokens of normalized in document order. Offsets are
// found by scanning forward from the end of the previous match. If the
// sentence tokenizer fails the text yields no tokens; a sentence the word
// tokenizer or stemmer fails on contributes none.
func (a *TokenAdapter) Tokenize(normalized string) []domain.Token {
	sentences := SafeSentences(a.sentences, normalized)

	var tokens []domain.Token
	cursorByte, cursorRune := 0, 0

	for i, sentence := range sentences {
		surfaces, stems, err := a.tokenizeSentence(sentence)
		if err != nil {
			log.Warn().Err(err).Int("sentence", i).Msg("skipping sentence")
			continue
		}

		for j, word := range surfaces {
			tok := domain.Token{
				Surface: word,
				Stem:    stems[j],
				Index:   len(tokens),
				Start:   -1,
				End:     -1,
			}
			if idx := strings.Index(normalized[cursorByte:], word); idx >= 0 && word != "" {
				startByte := cursorByte + idx
				tok.Start = cursorRune + utf8.RuneCountInString(normalized[cursorByte:startByte])
				tok.End = tok.Start + utf8.RuneCountInString(word)
				cursorByte = startByte + len(word)
				cursorRune = tok.End
			}
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

func (a *TokenAdapter) tokenizeSentence(sentence string) ([]string, []string, error) {
	words, ok := SafeWords(a.words, sentence)
	if !ok {
		return nil, nil, fmt.Errorf("word tokenizer failed")
	}

	stems := make([]string, len(words))
	for i, w := range words {
		var stem string
		var stemErr error
		if err := Guard(func() { stem, stemErr = a.stemmer.Stem(w) }); err != nil {
			return nil, nil, fmt.Errorf("stemmer: %w", err)
		}
		if stemErr != nil {
			return nil, nil, stemErr
		}
		stems[i] = stem
	}
	return words, stems, nil
}

// StemOf stems a single surface word the same way Tokenize does. The
// lowercased word is returned when the stemmer fails.
func (a *TokenAdapter) StemOf(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ""
	}
	var stem string
	var stemErr error
	if err := Guard(func() { stem, stemErr = a.stemmer.Stem(word) }); err != nil || stemErr != nil {
		return word
	}
	return stem
}

// StemAt returns the stem of the word covering rune offset in normalized,
// or "" when offset is out of range or not inside a word.
func (a *TokenAdapter) StemAt(normalized string, offset int) string {
	runes := []rune(normalized)
	if offset < 0 || offset >= len(runes) {
		return ""
	}
	start, end := offset, offset
	for start > 0 && isClickRune(runes[start-1]) {
		start--
	}
	for end < len(runes) && isClickRune(runes[end]) {
		end++
	}
	return a.StemOf(string(runes[start:end]))
}

func isClickRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
