package highlight

import (
	"fmt"

	"wordlens/internal/domain"
)

// Treatment is the visual category a stem is rendered with.
type Treatment string

const (
	None     Treatment = "none"
	Mark     Treatment = "mark"
	StopWord Treatment = "stop_word"
	Repeat   Treatment = "repeat"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ANSIBackground returns the 24-bit ANSI escape that sets c as background.
func (c RGB) ANSIBackground() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Background is the neutral color of unhighlighted text.
var Background = RGB{R: 0xFF, G: 0xFF, B: 0xFF}

var palettes = map[Treatment]func(intensity int) RGB{
	None: func(int) RGB { return Background },
	Mark: func(i int) RGB {
		return RGB{R: 0xFF, G: channel(196, i, 0.25), B: channel(64, i, 0.75)}
	},
	StopWord: func(i int) RGB {
		return RGB{R: channel(128, i, 0.5), G: channel(128, i, 0.5), B: 0xFF}
	},
	Repeat: func(i int) RGB {
		return RGB{R: 0xFF, G: channel(128, i, 0.5), B: channel(128, i, 0.5)}
	},
}

// Color maps intensity to the treatment's color. Every channel is
// monotonic in intensity.
func (t Treatment) Color(intensity int) RGB {
	fn, ok := palettes[t]
	if !ok {
		return Background
	}
	return fn(intensity)
}

func channel(base, intensity int, weight float64) uint8 {
	v := int(float64(base) + float64(intensity)*weight)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}

// Resolve picks the treatment for stem: the selected stem is marked, then
// stop words when that mode is on, then repeats when that mode is on. Stems
// absent from result are never highlighted.
func Resolve(result *domain.AnalysisResult, stem, selected string, flags domain.ModeFlags, policy domain.SentinelPolicy) (Treatment, int) {
	ws, ok := result.Stat(stem)
	if !ok {
		return None, 0
	}
	intensity := FromDistance(ws.MinDistance, result.NormalizedLength, policy)

	switch {
	case selected != "" && stem == selected:
		return Mark, intensity
	case ws.IsStopWord && flags.StopWords:
		return StopWord, intensity
	case flags.Repeats:
		return Repeat, intensity
	default:
		return None, intensity
	}
}
