package scorer

import (
	"strings"
	"unicode"

	"wordlens/internal/adapter/analyzer"
	"wordlens/internal/domain"
	"wordlens/internal/port"
)

// ReadabilityScorer computes a Flesch-style ease score and a Gunning-Fog
// style complexity score for one language.
type ReadabilityScorer struct {
	sentences port.SentenceTokenizer
	words     port.WordTokenizer
	lang      domain.Language
	ease      domain.EaseCoefficients
}

// NewReadabilityScorer creates a scorer. Zero coefficients fall back to the
// language defaults.
func NewReadabilityScorer(sentences port.SentenceTokenizer, words port.WordTokenizer, lang domain.Language, ease domain.EaseCoefficients) *ReadabilityScorer {
	if ease == (domain.EaseCoefficients{}) {
		ease = lang.Ease
	}
	return &ReadabilityScorer{
		sentences: sentences,
		words:     words,
		lang:      lang,
		ease:      ease,
	}
}

// Score computes both indices over the original text. A failing sentence
// tokenizer counts as no sentences; a sentence the word tokenizer fails on
// contributes no words.
func (s *ReadabilityScorer) Score(text string) domain.ReadabilityReport {
	sentences := analyzer.SafeSentences(s.sentences, text)
	ease := s.easeScore(sentences)
	fog := s.fogScore(text, len(sentences))
	return domain.ReadabilityReport{
		Ease:          ease,
		EaseBand:      EaseBandFor(ease),
		Fog:           fog,
		FogBand:       FogBandFor(fog),
		SentenceCount: len(sentences),
	}
}

// Ease returns the clamped ease score of text, 100 for empty text.
func (s *ReadabilityScorer) Ease(text string) float64 {
	return s.easeScore(analyzer.SafeSentences(s.sentences, text))
}

// Fog returns the fog score of text, 0 for empty text.
func (s *ReadabilityScorer) Fog(text string) float64 {
	return s.fogScore(text, len(analyzer.SafeSentences(s.sentences, text)))
}

func (s *ReadabilityScorer) easeScore(sentences []string) float64 {
	totalWords, totalSyllables := 0, 0
	for _, sentence := range sentences {
		words, ok := analyzer.SafeWords(s.words, sentence)
		if !ok {
			continue
		}
		for _, w := range words {
			if !analyzer.IsAlnum(w) {
				continue
			}
			totalWords++
			totalSyllables += s.syllables(w)
		}
	}
	if len(sentences) == 0 || totalWords == 0 {
		return 100
	}

	asl := float64(totalWords) / float64(len(sentences))
	asw := float64(totalSyllables) / float64(totalWords)
	score := s.ease.Base - s.ease.ASL*asl - s.ease.ASW*asw
	return clamp(score, 0, 100)
}

func (s *ReadabilityScorer) fogScore(text string, sentenceCount int) float64 {
	var words []string
	for _, sentence := range analyzer.SafeSentences(s.sentences, analyzer.Preprocess(text)) {
		if sw, ok := analyzer.SafeWords(s.words, sentence); ok {
			words = append(words, sw...)
		}
	}
	if sentenceCount == 0 || len(words) == 0 {
		return 0
	}

	hard := 0
	for _, w := range words {
		if s.isHardWord(w) {
			hard++
		}
	}

	asl := float64(len(words)) / float64(sentenceCount)
	psw := 100 * float64(hard) / float64(len(words))
	return 0.3 * (asl + psw)
}

// isHardWord reports whether word has four or more vowels and is not a
// proper name, hyphenated compound or excluded suffix form.
func (s *ReadabilityScorer) isHardWord(word string) bool {
	if s.syllables(word) < 4 {
		return false
	}
	if first := []rune(word)[0]; unicode.IsUpper(first) {
		return false
	}
	if strings.ContainsAny(word, "-–") {
		return false
	}
	for _, suffix := range s.lang.HardWordExclusions {
		if strings.HasSuffix(word, suffix) {
			return false
		}
	}
	return true
}

func (s *ReadabilityScorer) syllables(word string) int {
	n := 0
	for _, r := range strings.ToLower(word) {
		if s.lang.IsVowel(r) {
			n++
		}
	}
	return n
}

// EaseBandFor maps an ease score to its band.
func EaseBandFor(score float64) domain.EaseBand {
	switch {
	case score >= 90:
		return domain.EaseVeryEasy
	case score >= 80:
		return domain.EaseEasy
	case score >= 70:
		return domain.EaseFairlyEasy
	case score >= 60:
		return domain.EaseStandard
	case score >= 50:
		return domain.EaseFairlyDifficult
	case score >= 30:
		return domain.EaseDifficult
	default:
		return domain.EaseVeryDifficult
	}
}

// FogBandFor maps a fog score to its band.
func FogBandFor(score float64) domain.FogBand {
	switch {
	case score < 7:
		return domain.FogSimple
	case score < 13:
		return domain.FogEasy
	case score < 18:
		return domain.FogModerate
	case score < 24:
		return domain.FogHigh
	default:
		return domain.FogVeryDifficult
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
