package analyzer

import (
	"errors"
	"strings"
	"testing"
)

type identityStemmer struct{}

func (identityStemmer) Stem(word string) (string, error) { return word, nil }

type failingStemmer struct{ bad string }

func (s failingStemmer) Stem(word string) (string, error) {
	if word == s.bad {
		return "", errors.New("cannot stem")
	}
	return word, nil
}

type lineSentences struct{}

func (lineSentences) Sentences(text string) []string { return strings.Split(text, "\n") }

type panickySentences struct{}

func (panickySentences) Sentences(string) []string { panic("tokenizer crashed") }

func TestTokenAdapter_ForwardScan(t *testing.T) {
	adapter := NewTokenAdapter(NewSentenceSplitter(nil), NewWordSplitter(), identityStemmer{})

	tokens := adapter.Tokenize("кота кот кот")

	want := []struct {
		surface    string
		start, end int
	}{
		{"кота", 0, 4},
		{"кот", 5, 8},
		{"кот", 9, 12},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Surface != w.surface || tok.Start != w.start || tok.End != w.end || tok.Index != i {
			t.Errorf("token %d = %+v, want %s [%d,%d) index %d", i, tok, w.surface, w.start, w.end, i)
		}
	}
}

func TestTokenAdapter_SkipsFailingSentence(t *testing.T) {
	adapter := NewTokenAdapter(lineSentences{}, NewWordSplitter(), failingStemmer{bad: "плохо"})

	tokens := adapter.Tokenize("раз два\nплохо три\nчетыре")

	var surfaces []string
	for _, tok := range tokens {
		surfaces = append(surfaces, tok.Surface)
	}
	if strings.Join(surfaces, " ") != "раз два четыре" {
		t.Fatalf("unexpected tokens: %v", surfaces)
	}
	last := tokens[2]
	if last.Index != 2 || last.Start != 18 || last.End != 24 {
		t.Errorf("last token = %+v, want index 2 at [18,24)", last)
	}
}

func TestTokenAdapter_TokenizerPanicYieldsNoTokens(t *testing.T) {
	adapter := NewTokenAdapter(panickySentences{}, NewWordSplitter(), identityStemmer{})

	if tokens := adapter.Tokenize("любой текст"); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %+v", tokens)
	}
}

func TestTokenAdapter_StemOf(t *testing.T) {
	adapter := NewTokenAdapter(NewSentenceSplitter(nil), NewWordSplitter(), failingStemmer{bad: "сбой"})

	tests := map[string]string{
		"  Кот ": "кот",
		"СБОЙ":   "сбой",
		"":       "",
	}
	for in, want := range tests {
		if got := adapter.StemOf(in); got != want {
			t.Errorf("StemOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTokenAdapter_StemAt(t *testing.T) {
	adapter := NewTokenAdapter(NewSentenceSplitter(nil), NewWordSplitter(), identityStemmer{})
	text := "мой кот спит"

	tests := []struct {
		offset int
		want   string
	}{
		{0, "мой"},
		{4, "кот"},
		{6, "кот"},
		{11, "спит"},
		{-1, ""},
		{12, ""},
	}
	for _, tt := range tests {
		if got := adapter.StemAt(text, tt.offset); got != tt.want {
			t.Errorf("StemAt(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestSnowballStemmer(t *testing.T) {
	tests := []struct {
		language string
		word     string
		want     string
	}{
		{"english", "running", "run"},
		{"english", "the", "the"},
		{"russian", "книги", "книг"},
		{"russian", "была", "был"},
		{"russian", "были", "был"},
		{"russian", "было", "был"},
	}
	for _, tt := range tests {
		got, err := NewSnowballStemmer(tt.language).Stem(tt.word)
		if err != nil {
			t.Fatalf("Stem(%q) failed: %v", tt.word, err)
		}
		if got != tt.want {
			t.Errorf("%s Stem(%q) = %q, want %q", tt.language, tt.word, got, tt.want)
		}
	}

	if _, err := NewSnowballStemmer("klingon").Stem("qapla"); err == nil {
		t.Error("expected error for unsupported language")
	}
}
