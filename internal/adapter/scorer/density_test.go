package scorer

import (
	"testing"

	"wordlens/internal/domain"
)

func TestDensity(t *testing.T) {
	tests := []struct {
		name      string
		result    domain.AnalysisResult
		source    domain.SpamSource
		wantWater float64
		wantSpam  float64
	}{
		{
			name:   "no words",
			result: domain.AnalysisResult{},
			source: domain.SpamAllStems,
		},
		{
			name: "evenly spaced keyword",
			result: domain.AnalysisResult{
				WordCount:     50,
				StopWordCount: 10,
				MaxStemCount:  10,
				Stats:         map[string]domain.WordStat{"ключ": {Stem: "ключ", Count: 10, MinDistance: 5}},
			},
			source:    domain.SpamAllStems,
			wantWater: 20,
			wantSpam:  20,
		},
		{
			name: "all unique words, full stream",
			result: domain.AnalysisResult{
				WordCount:     4,
				StopWordCount: 1,
				MaxStemCount:  1,
				Stats:         map[string]domain.WordStat{"и": {Stem: "и", Count: 1, MinDistance: 100, IsStopWord: true}},
			},
			source:    domain.SpamAllStems,
			wantWater: 25,
			wantSpam:  25,
		},
		{
			name: "all unique words, retained stems only",
			result: domain.AnalysisResult{
				WordCount:     4,
				StopWordCount: 1,
				MaxStemCount:  1,
				Stats:         map[string]domain.WordStat{"и": {Stem: "и", Count: 1, MinDistance: 100, IsStopWord: true}},
			},
			source:    domain.SpamRetainedStems,
			wantWater: 25,
			wantSpam:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Density(tt.result, tt.source)
			if !approx(got.Water, tt.wantWater) || !approx(got.Spam, tt.wantSpam) {
				t.Errorf("Density() = water %v spam %v, want %v and %v", got.Water, got.Spam, tt.wantWater, tt.wantSpam)
			}
			if got.WaterBand != WaterBandFor(got.Water) || got.SpamBand != SpamBandFor(got.Spam) {
				t.Errorf("bands do not match: %+v", got)
			}
		})
	}
}

func TestPercentBounds(t *testing.T) {
	tests := []struct {
		part, total int
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{3, 3, 100},
		{7, 3, 100},
		{-1, 3, 0},
	}
	for _, tt := range tests {
		if got := percent(tt.part, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestDensityBands(t *testing.T) {
	waters := []struct {
		v    float64
		want domain.WaterBand
	}{
		{0, domain.WaterNatural},
		{14.9, domain.WaterNatural},
		{15, domain.WaterElevated},
		{30, domain.WaterHigh},
	}
	for _, tt := range waters {
		if got := WaterBandFor(tt.v); got != tt.want {
			t.Errorf("WaterBandFor(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}

	spams := []struct {
		v    float64
		want domain.SpamBand
	}{
		{0, domain.SpamNatural},
		{30, domain.SpamOptimized},
		{59.9, domain.SpamOptimized},
		{60, domain.SpamHeavy},
	}
	for _, tt := range spams {
		if got := SpamBandFor(tt.v); got != tt.want {
			t.Errorf("SpamBandFor(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}
