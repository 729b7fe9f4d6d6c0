package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"wordlens/internal/adapter/analyzer"
	"wordlens/internal/adapter/highlight"
	"wordlens/internal/adapter/scorer"
	"wordlens/internal/domain"
	"wordlens/internal/port"
)

// EngineOptions tune an Engine beyond its collaborators.
type EngineOptions struct {
	Sentinel   domain.SentinelPolicy
	SpamSource domain.SpamSource
	// Ease overrides the language's ease coefficients when non-zero.
	Ease domain.EaseCoefficients
}

// Engine runs analysis passes for one language. It holds no per-document
// state; every call is independent.
type Engine struct {
	lang        domain.Language
	adapter     *analyzer.TokenAdapter
	stop        port.StopWords
	readability *scorer.ReadabilityScorer
	opts        EngineOptions
}

// NewEngine wires an engine from external collaborators.
func NewEngine(
	lang domain.Language,
	sentences port.SentenceTokenizer,
	words port.WordTokenizer,
	stemmer port.Stemmer,
	stop port.StopWords,
	opts EngineOptions,
) *Engine {
	if opts.Sentinel == "" {
		opts.Sentinel = domain.SentinelZero
	}
	if opts.SpamSource == "" {
		opts.SpamSource = domain.SpamAllStems
	}
	return &Engine{
		lang:        lang,
		adapter:     analyzer.NewTokenAdapter(sentences, words, stemmer),
		stop:        stop,
		readability: scorer.NewReadabilityScorer(sentences, words, lang, opts.Ease),
		opts:        opts,
	}
}

// NewDefaultEngine builds an engine for language with the built-in
// tokenizers, Snowball stemmer and stop-word list.
func NewDefaultEngine(language string, opts EngineOptions) (*Engine, error) {
	lang, err := domain.LookupLanguage(language)
	if err != nil {
		return nil, err
	}
	stop, err := analyzer.DefaultStopWords(lang.Name)
	if err != nil {
		return nil, err
	}
	return NewEngine(
		lang,
		analyzer.NewSentenceSplitter(lang.Abbreviations),
		analyzer.NewWordSplitter(),
		analyzer.NewSnowballStemmer(lang.Name),
		stop,
		opts,
	), nil
}

// Language returns the engine's language profile.
func (e *Engine) Language() domain.Language {
	return e.lang
}

// Options returns the engine's options.
func (e *Engine) Options() EngineOptions {
	return e.opts
}

// Analyze runs a full pass over raw text.
func (e *Engine) Analyze(raw string) domain.Report {
	normalized := analyzer.Preprocess(raw)
	tokens := e.adapter.Tokenize(normalized)

	result := analyzer.Analyze(tokens, e.stop)
	result.CharCount = utf8.RuneCountInString(raw)
	result.CharCountNoSpaces = utf8.RuneCountInString(strings.ReplaceAll(raw, " ", ""))

	report := domain.Report{
		Result:      result,
		Readability: e.readability.Score(raw),
		Density:     scorer.Density(result, e.opts.SpamSource),
	}

	log.Debug().
		Int("words", result.WordCount).
		Int("stems", result.Len()).
		Int("sentences", report.Readability.SentenceCount).
		Float64("ease", report.Readability.Ease).
		Float64("fog", report.Readability.Fog).
		Float64("water", report.Density.Water).
		Float64("spam", report.Density.Spam).
		Msg("analysis completed")

	return report
}

// Sort orders the result's stems by key.
func (e *Engine) Sort(result *domain.AnalysisResult, key domain.SortKey) domain.SortedView {
	return Sort(result, key)
}

// Intensity returns the highlight intensity of stem.
func (e *Engine) Intensity(result *domain.AnalysisResult, stem string) int {
	return highlight.Intensity(result, stem, e.opts.Sentinel)
}

// Resolve returns the treatment and intensity stem is rendered with.
func (e *Engine) Resolve(result *domain.AnalysisResult, stem, selected string, flags domain.ModeFlags) (highlight.Treatment, int) {
	return highlight.Resolve(result, stem, selected, flags, e.opts.Sentinel)
}

// StemOf stems a surface word with the engine's stemmer.
func (e *Engine) StemOf(word string) string {
	return e.adapter.StemOf(word)
}

// StemAt stems the word covering a rune offset of raw text. Offsets are the
// same in raw and preprocessed text.
func (e *Engine) StemAt(raw string, offset int) string {
	return e.adapter.StemAt(analyzer.Preprocess(raw), offset)
}

// Highlight returns the colored spans of the result's tokens under the
// given selection and modes.
func (e *Engine) Highlight(result *domain.AnalysisResult, selected string, flags domain.ModeFlags) []highlight.Span {
	return highlight.Spans(result.Tokens, func(stem string) (highlight.Treatment, int) {
		return e.Resolve(result, stem, selected, flags)
	})
}
