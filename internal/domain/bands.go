package domain

// EaseBand is the qualitative reading of an ease score.
type EaseBand string

const (
	EaseVeryEasy        EaseBand = "very_easy"
	EaseEasy            EaseBand = "easy"
	EaseFairlyEasy      EaseBand = "fairly_easy"
	EaseStandard        EaseBand = "standard"
	EaseFairlyDifficult EaseBand = "fairly_difficult"
	EaseDifficult       EaseBand = "difficult"
	EaseVeryDifficult   EaseBand = "very_difficult"
)

var easeLabels = map[EaseBand]string{
	EaseVeryEasy:        "Very easy to read, child-level.",
	EaseEasy:            "Easy to read, conversational.",
	EaseFairlyEasy:      "Fairly easy to read.",
	EaseStandard:        "Standard text, early-teen level.",
	EaseFairlyDifficult: "Fairly difficult to read.",
	EaseDifficult:       "Difficult to read, tertiary education helps.",
	EaseVeryDifficult:   "Very difficult to read, advanced degree helps.",
}

// Label returns a human-readable description of the band.
func (b EaseBand) Label() string { return easeLabels[b] }

// FogBand is the qualitative reading of a fog score.
type FogBand string

const (
	FogSimple        FogBand = "simple"
	FogEasy          FogBand = "easy"
	FogModerate      FogBand = "moderate"
	FogHigh          FogBand = "high"
	FogVeryDifficult FogBand = "very_difficult"
)

var fogLabels = map[FogBand]string{
	FogSimple:        "Simple text suitable for a general audience.",
	FogEasy:          "Easy text, understandable for most adults.",
	FogModerate:      "Moderately complex text, needs some effort.",
	FogHigh:          "Complex text for specialists or highly educated readers.",
	FogVeryDifficult: "Very difficult text, hard even for experts.",
}

// Label returns a human-readable description of the band.
func (b FogBand) Label() string { return fogLabels[b] }

// WaterBand is the qualitative reading of the stop-word share.
type WaterBand string

const (
	WaterNatural  WaterBand = "natural"
	WaterElevated WaterBand = "elevated"
	WaterHigh     WaterBand = "high"
)

var waterLabels = map[WaterBand]string{
	WaterNatural:  "Natural amount of filler words.",
	WaterElevated: "Elevated amount of filler words.",
	WaterHigh:     "High amount of filler words.",
}

// Label returns a human-readable description of the band.
func (b WaterBand) Label() string { return waterLabels[b] }

// SpamBand is the qualitative reading of the dominant-stem share.
type SpamBand string

const (
	SpamNatural   SpamBand = "natural"
	SpamOptimized SpamBand = "seo_optimized"
	SpamHeavy     SpamBand = "spammy"
)

var spamLabels = map[SpamBand]string{
	SpamNatural:   "Natural keyword density.",
	SpamOptimized: "SEO-optimized text.",
	SpamHeavy:     "Heavily optimized or spammy text.",
}

// Label returns a human-readable description of the band.
func (b SpamBand) Label() string { return spamLabels[b] }
