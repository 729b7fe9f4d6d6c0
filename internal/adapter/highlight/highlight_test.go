package highlight

import (
	"bytes"
	"testing"

	"wordlens/internal/domain"
)

func TestRaw_MonotonicInDistance(t *testing.T) {
	for _, length := range []int{100, 137, 1000} {
		prev := Raw(1, length)
		for d := 2; d <= length; d++ {
			cur := Raw(d, length)
			if cur < prev {
				t.Fatalf("Raw not monotonic at L=%d: Raw(%d)=%d < Raw(%d)=%d", length, d, cur, d-1, prev)
			}
			prev = cur
		}
	}
}

func TestFromDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		length   int
		policy   domain.SentinelPolicy
		want     int
	}{
		{"adjacent repeat clamps to minimum", 1, 100, domain.SentinelZero, MinIntensity},
		{"close repeat", 2, 100, domain.SentinelZero, 8},
		{"half the document", 50, 100, domain.SentinelZero, 192},
		{"almost never repeated", 99, 100, domain.SentinelZero, 248},
		{"sentinel with zero policy", 100, 100, domain.SentinelZero, 0},
		{"sentinel with max policy", 100, 100, domain.SentinelMax, MaxIntensity},
		{"sentinel follows length", 250, 250, domain.SentinelMax, MaxIntensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDistance(tt.distance, tt.length, tt.policy); got != tt.want {
				t.Errorf("FromDistance(%d, %d, %s) = %d, want %d", tt.distance, tt.length, tt.policy, got, tt.want)
			}
		})
	}
}

func TestFromDistance_Bounded(t *testing.T) {
	for _, policy := range []domain.SentinelPolicy{domain.SentinelZero, domain.SentinelMax} {
		for d := 1; d <= 300; d++ {
			got := FromDistance(d, 300, policy)
			if got < 0 || got > MaxIntensity {
				t.Fatalf("FromDistance(%d) = %d out of range", d, got)
			}
			if d < 300 && got < MinIntensity {
				t.Fatalf("FromDistance(%d) = %d below minimum for a repeat", d, got)
			}
		}
	}
}

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Stats: map[string]domain.WordStat{
			"кот": {Stem: "кот", Count: 3, MinDistance: 2},
			"и":   {Stem: "и", Count: 2, MinDistance: 10, IsStopWord: true},
			"же":  {Stem: "же", Count: 1, MinDistance: 100, IsStopWord: true},
		},
		Order:            []string{"кот", "и", "же"},
		NormalizedLength: 100,
		WordCount:        20,
	}
}

func TestIntensity(t *testing.T) {
	result := sampleResult()

	if got := Intensity(result, "кот", domain.SentinelZero); got != 8 {
		t.Errorf("Intensity(кот) = %d, want 8", got)
	}
	if got := Intensity(result, "же", domain.SentinelZero); got != 0 {
		t.Errorf("Intensity(же) with zero policy = %d, want 0", got)
	}
	if got := Intensity(result, "же", domain.SentinelMax); got != MaxIntensity {
		t.Errorf("Intensity(же) with max policy = %d, want %d", got, MaxIntensity)
	}
	if got := Intensity(result, "пёс", domain.SentinelMax); got != 0 {
		t.Errorf("Intensity of unknown stem = %d, want 0", got)
	}
	if got := Intensity(nil, "кот", domain.SentinelZero); got != 0 {
		t.Errorf("Intensity on nil result = %d, want 0", got)
	}
}

func TestResolve(t *testing.T) {
	result := sampleResult()
	all := domain.ModeFlags{StopWords: true, Repeats: true}

	tests := []struct {
		name          string
		stem          string
		selected      string
		flags         domain.ModeFlags
		wantTreatment Treatment
		wantIntensity int
	}{
		{"selected wins over everything", "и", "и", all, Mark, 48},
		{"selected wins with modes off", "кот", "кот", domain.ModeFlags{}, Mark, 8},
		{"stop word mode", "и", "", all, StopWord, 48},
		{"stop word falls back to repeat", "и", "", domain.ModeFlags{Repeats: true}, Repeat, 48},
		{"repeat mode", "кот", "кот2", all, Repeat, 8},
		{"no modes", "кот", "", domain.ModeFlags{}, None, 8},
		{"stop word only mode on plain repeat", "кот", "", domain.ModeFlags{StopWords: true}, None, 8},
		{"unknown stem", "пёс", "пёс", all, None, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			treatment, intensity := Resolve(result, tt.stem, tt.selected, tt.flags, domain.SentinelZero)
			if treatment != tt.wantTreatment || intensity != tt.wantIntensity {
				t.Errorf("Resolve(%q) = (%s, %d), want (%s, %d)", tt.stem, treatment, intensity, tt.wantTreatment, tt.wantIntensity)
			}
		})
	}
}

func TestTreatmentColor(t *testing.T) {
	tests := []struct {
		treatment Treatment
		intensity int
		want      RGB
	}{
		{None, 200, Background},
		{Repeat, 0, RGB{R: 0xFF, G: 128, B: 128}},
		{Repeat, 255, RGB{R: 0xFF, G: 255, B: 255}},
		{StopWord, 0, RGB{R: 128, G: 128, B: 0xFF}},
		{Mark, 0, RGB{R: 0xFF, G: 196, B: 64}},
		{Mark, 255, RGB{R: 0xFF, G: 255, B: 255}},
		{Treatment("unknown"), 10, Background},
	}
	for _, tt := range tests {
		if got := tt.treatment.Color(tt.intensity); got != tt.want {
			t.Errorf("%s.Color(%d) = %+v, want %+v", tt.treatment, tt.intensity, got, tt.want)
		}
	}
}

func TestTreatmentColor_Monotonic(t *testing.T) {
	for _, treatment := range []Treatment{Mark, StopWord, Repeat} {
		prev := treatment.Color(0)
		for i := 1; i <= MaxIntensity; i++ {
			cur := treatment.Color(i)
			if cur.R < prev.R || cur.G < prev.G || cur.B < prev.B {
				t.Fatalf("%s color decreases at %d: %+v -> %+v", treatment, i, prev, cur)
			}
			prev = cur
		}
	}
}

func TestRGB_Formats(t *testing.T) {
	c := RGB{R: 255, G: 128, B: 0}
	if got := c.Hex(); got != "#FF8000" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.ANSIBackground(); got != "\x1b[48;2;255;128;0m" {
		t.Errorf("ANSIBackground() = %q", got)
	}
}

func TestSpansAndRenderANSI(t *testing.T) {
	tokens := []domain.Token{
		{Surface: "кот", Stem: "кот", Index: 0, Start: 0, End: 3},
		{Surface: "и", Stem: "и", Index: 1, Start: 4, End: 5},
		{Surface: "кот", Stem: "кот", Index: 2, Start: 6, End: 9},
		{Surface: "пёс", Stem: "пёс", Index: 3, Start: -1, End: -1},
	}
	resolve := func(stem string) (Treatment, int) {
		if stem == "кот" || stem == "пёс" {
			return Repeat, 100
		}
		return None, 0
	}

	spans := Spans(tokens, resolve)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %+v", spans)
	}
	if spans[1].Start != 6 || spans[1].Color != Repeat.Color(100).Hex() {
		t.Errorf("unexpected span %+v", spans[1])
	}

	var buf bytes.Buffer
	if err := RenderANSI(&buf, "Кот и кот.", spans); err != nil {
		t.Fatalf("RenderANSI failed: %v", err)
	}
	paint := Repeat.Color(100).ANSIBackground() + ansiBlack
	want := paint + "Кот" + ansiReset + " и " + paint + "кот" + ansiReset + "."
	if buf.String() != want {
		t.Errorf("RenderANSI() = %q, want %q", buf.String(), want)
	}
}
