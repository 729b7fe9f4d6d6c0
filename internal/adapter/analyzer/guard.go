package analyzer

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"wordlens/internal/port"
)

// Guard runs fn and converts a panic into an error.
func Guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}

// SafeSentences splits text with t. A failing tokenizer yields no
// sentences.
func SafeSentences(t port.SentenceTokenizer, text string) []string {
	var sentences []string
	if err := Guard(func() { sentences = t.Sentences(text) }); err != nil {
		log.Warn().Err(err).Msg("sentence tokenizer failed, treating text as empty")
		return nil
	}
	return sentences
}

// SafeWords splits one sentence with t. The bool is false when the
// tokenizer failed and the sentence should be skipped.
func SafeWords(t port.WordTokenizer, sentence string) ([]string, bool) {
	var words []string
	if err := Guard(func() { words = t.Words(sentence) }); err != nil {
		log.Warn().Err(err).Msg("word tokenizer failed, skipping sentence")
		return nil, false
	}
	return words, true
}
