package domain

import "time"

// MinNormalizedLength is the floor of the per-pass normalization constant.
const MinNormalizedLength = 100

// Token is one word of the preprocessed document.
type Token struct {
	Surface string `json:"surface"`
	Stem    string `json:"stem"`
	Index   int    `json:"index"`
	// Start and End are rune offsets into the preprocessed text; both are -1
	// when the forward scan could not locate the surface form.
	Start int `json:"start"`
	End   int `json:"end"`
}

// WordStat aggregates every occurrence of one stem.
type WordStat struct {
	Stem        string `json:"stem"`
	Count       int    `json:"count"`
	MinDistance int    `json:"min_distance"`
	IsStopWord  bool   `json:"is_stop_word"`
}

// Repeated reports whether the stem occurs more than once.
func (w WordStat) Repeated() bool {
	return w.Count > 1
}

// AnalysisResult is the output of one analysis pass. It is replaced
// wholesale by the next pass and never merged.
type AnalysisResult struct {
	Stats map[string]WordStat `json:"stats"`
	// Order lists retained stems by first occurrence.
	Order            []string `json:"order"`
	Tokens           []Token  `json:"tokens,omitempty"`
	NormalizedLength int      `json:"normalized_length"`
	WordCount        int      `json:"word_count"`
	StopWordCount    int      `json:"stop_word_count"`
	// MaxStemCount is the largest per-stem count over the whole token
	// stream, retained or not.
	MaxStemCount      int `json:"max_stem_count"`
	CharCount         int `json:"char_count"`
	CharCountNoSpaces int `json:"char_count_no_spaces"`
}

// Stat returns the statistics for stem, if it was retained.
func (r *AnalysisResult) Stat(stem string) (WordStat, bool) {
	if r == nil || r.Stats == nil {
		return WordStat{}, false
	}
	ws, ok := r.Stats[stem]
	return ws, ok
}

// Len returns the number of retained stems.
func (r *AnalysisResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Stats)
}

// ReadabilityReport pairs the two readability indices with their bands.
type ReadabilityReport struct {
	Ease          float64  `json:"ease"`
	EaseBand      EaseBand `json:"ease_band"`
	Fog           float64  `json:"fog"`
	FogBand       FogBand  `json:"fog_band"`
	SentenceCount int      `json:"sentence_count"`
}

// DensityReport holds the water and spam percentages.
type DensityReport struct {
	Water     float64   `json:"water"`
	WaterBand WaterBand `json:"water_band"`
	Spam      float64   `json:"spam"`
	SpamBand  SpamBand  `json:"spam_band"`
}

// Report bundles everything a single analysis produces.
type Report struct {
	Result      AnalysisResult    `json:"result"`
	Readability ReadabilityReport `json:"readability"`
	Density     DensityReport     `json:"density"`
}

// SortKey selects one of the presentation orders.
type SortKey string

const (
	SortByCount    SortKey = "count"
	SortByDistance SortKey = "distance"
)

// Entry is one row of a SortedView.
type Entry struct {
	Stem string   `json:"stem"`
	Stat WordStat `json:"stat"`
}

// SortedView is an ordered projection of an AnalysisResult.
type SortedView []Entry

// Stems returns the stems in view order.
func (v SortedView) Stems() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Stem
	}
	return out
}

// ModeFlags are the highlight modes toggled by the caller.
type ModeFlags struct {
	StopWords bool `json:"stop_words"`
	Repeats   bool `json:"repeats"`
}

// SentinelPolicy decides the intensity of a stem whose distance is the
// "never repeated" sentinel.
type SentinelPolicy string

const (
	SentinelZero SentinelPolicy = "zero"
	SentinelMax  SentinelPolicy = "max"
)

// SpamSource selects which stems feed the spam percentage.
type SpamSource string

const (
	SpamAllStems      SpamSource = "all"
	SpamRetainedStems SpamSource = "retained"
)

// StoredReport is a persisted analysis with its provenance.
type StoredReport struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
	Language  string    `json:"language"`
	Report    Report    `json:"report"`
	Text      string    `json:"-"`
}
