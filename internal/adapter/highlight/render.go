package highlight

import (
	"fmt"
	"io"
	"strings"

	"wordlens/internal/domain"
)

// Span is one highlighted token of a document, in rune offsets.
type Span struct {
	Start     int       `json:"start"`
	End       int       `json:"end"`
	Stem      string    `json:"stem"`
	Treatment Treatment `json:"treatment"`
	Intensity int       `json:"intensity"`
	Color     string    `json:"color"`
}

// ResolveFunc returns the treatment and intensity for a stem.
type ResolveFunc func(stem string) (Treatment, int)

// Spans resolves every located token. Tokens rendered with None are left
// out.
func Spans(tokens []domain.Token, resolve ResolveFunc) []Span {
	spans := make([]Span, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Start < 0 {
			continue
		}
		treatment, intensity := resolve(tok.Stem)
		if treatment == None {
			continue
		}
		spans = append(spans, Span{
			Start:     tok.Start,
			End:       tok.End,
			Stem:      tok.Stem,
			Treatment: treatment,
			Intensity: intensity,
			Color:     treatment.Color(intensity).Hex(),
		})
	}
	return spans
}

const (
	ansiReset = "\x1b[0m"
	ansiBlack = "\x1b[30m"
)

// RenderANSI writes text with each span painted as a 24-bit terminal
// background. Spans must be ordered and non-overlapping.
func RenderANSI(w io.Writer, text string, spans []Span) error {
	runes := []rune(text)
	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.Start < pos || s.End > len(runes) || s.Start >= s.End {
			continue
		}
		b.WriteString(string(runes[pos:s.Start]))
		b.WriteString(s.Treatment.Color(s.Intensity).ANSIBackground())
		b.WriteString(ansiBlack)
		b.WriteString(string(runes[s.Start:s.End]))
		b.WriteString(ansiReset)
		pos = s.End
	}
	b.WriteString(string(runes[pos:]))

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write highlighted text: %w", err)
	}
	return nil
}
