package analyzer

import (
	"wordlens/internal/domain"
	"wordlens/internal/port"
)

// NormalizedLength returns max(wordCount, domain.MinNormalizedLength).
func NormalizedLength(wordCount int) int {
	if wordCount < domain.MinNormalizedLength {
		return domain.MinNormalizedLength
	}
	return wordCount
}

// Analyze builds per-stem statistics for one pass over tokens. A stem is
// kept when it occurs more than once or is a stop word; a stop word seen
// once gets the normalized length as its distance. Stop words are matched
// on surface forms: a stem is a stop word when any of its surface forms is.
func Analyze(tokens []domain.Token, stop port.StopWords) domain.AnalysisResult {
	length := NormalizedLength(len(tokens))

	type group struct {
		positions []int
		stop      bool
	}
	groups := make(map[string]*group)
	var order []string
	stopTokens := 0
	maxCount := 0

	for _, tok := range tokens {
		g, ok := groups[tok.Stem]
		if !ok {
			g = &group{}
			groups[tok.Stem] = g
			order = append(order, tok.Stem)
		}
		g.positions = append(g.positions, tok.Index)
		if isStopToken(tok, stop) {
			g.stop = true
			stopTokens++
		}
		if len(g.positions) > maxCount {
			maxCount = len(g.positions)
		}
	}

	result := domain.AnalysisResult{
		Stats:            make(map[string]domain.WordStat),
		Tokens:           tokens,
		NormalizedLength: length,
		WordCount:        len(tokens),
		StopWordCount:    stopTokens,
		MaxStemCount:     maxCount,
	}

	for _, stem := range order {
		g := groups[stem]
		if len(g.positions) < 2 && !g.stop {
			continue
		}
		result.Stats[stem] = domain.WordStat{
			Stem:        stem,
			Count:       len(g.positions),
			MinDistance: minGap(g.positions, length),
			IsStopWord:  g.stop,
		}
		result.Order = append(result.Order, stem)
	}

	return result
}

// minGap returns the smallest difference between consecutive positions, or
// sentinel when there is only one position.
func minGap(positions []int, sentinel int) int {
	if len(positions) < 2 {
		return sentinel
	}
	best := positions[1] - positions[0]
	for i := 2; i < len(positions); i++ {
		if d := positions[i] - positions[i-1]; d < best {
			best = d
		}
	}
	return best
}

func isStopToken(tok domain.Token, stop port.StopWords) bool {
	if stop == nil {
		return false
	}
	return stop.Contains(tok.Surface)
}
