package scorer

import "wordlens/internal/domain"

// Density computes the water and spam percentages of an analysis result.
// With SpamRetainedStems only retained stems compete for the dominant count.
func Density(result domain.AnalysisResult, source domain.SpamSource) domain.DensityReport {
	water := Water(result.StopWordCount, result.WordCount)

	dominant := result.MaxStemCount
	if source == domain.SpamRetainedStems {
		dominant = 0
		for _, ws := range result.Stats {
			if ws.Count > 1 && ws.Count > dominant {
				dominant = ws.Count
			}
		}
	}
	spam := Spam(dominant, result.WordCount)

	return domain.DensityReport{
		Water:     water,
		WaterBand: WaterBandFor(water),
		Spam:      spam,
		SpamBand:  SpamBandFor(spam),
	}
}

// Water returns the share of stop-word tokens in percent.
func Water(stopTokens, totalWords int) float64 {
	return percent(stopTokens, totalWords)
}

// Spam returns the share of the dominant stem in percent.
func Spam(maxStemCount, totalWords int) float64 {
	return percent(maxStemCount, totalWords)
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return clamp(100*float64(part)/float64(total), 0, 100)
}

// WaterBandFor maps a water percentage to its band.
func WaterBandFor(water float64) domain.WaterBand {
	switch {
	case water < 15:
		return domain.WaterNatural
	case water < 30:
		return domain.WaterElevated
	default:
		return domain.WaterHigh
	}
}

// SpamBandFor maps a spam percentage to its band.
func SpamBandFor(spam float64) domain.SpamBand {
	switch {
	case spam < 30:
		return domain.SpamNatural
	case spam < 60:
		return domain.SpamOptimized
	default:
		return domain.SpamHeavy
	}
}
