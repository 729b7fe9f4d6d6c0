package usecase

import (
	"fmt"

	"wordlens/config"
	"wordlens/internal/adapter/analyzer"
	"wordlens/internal/domain"
)

// NewEngineFromConfig builds an engine from the analysis and readability
// sections of cfg. A configured stop-word file replaces the built-in list.
func NewEngineFromConfig(cfg *config.Config) (*Engine, error) {
	lang, err := domain.LookupLanguage(cfg.Analysis.Language)
	if err != nil {
		return nil, err
	}

	var stop *analyzer.StopWordSet
	if cfg.Analysis.StopwordsFile != "" {
		stop, err = analyzer.LoadStopWords(cfg.Analysis.StopwordsFile)
	} else {
		stop, err = analyzer.DefaultStopWords(lang.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stop words: %w", err)
	}

	return NewEngine(
		lang,
		analyzer.NewSentenceSplitter(lang.Abbreviations),
		analyzer.NewWordSplitter(),
		analyzer.NewSnowballStemmer(lang.Name),
		stop,
		EngineOptions{
			Sentinel:   domain.SentinelPolicy(cfg.Analysis.SentinelIntensity),
			SpamSource: domain.SpamSource(cfg.Analysis.SpamSource),
			Ease:       cfg.EaseCoefficients(lang),
		},
	), nil
}
