package analyzer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStopWords(t *testing.T) {
	tests := []struct {
		language string
		present  []string
		absent   []string
	}{
		{"russian", []string{"и", "в", "не", "И"}, []string{"кот", "дом"}},
		{"english", []string{"the", "and", "The"}, []string{"cat", "house"}},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			set, err := DefaultStopWords(tt.language)
			if err != nil {
				t.Fatalf("DefaultStopWords failed: %v", err)
			}
			if set.Len() == 0 {
				t.Fatal("expected a non-empty list")
			}
			for _, w := range tt.present {
				if !set.Contains(w) {
					t.Errorf("expected %q to be a stop word", w)
				}
			}
			for _, w := range tt.absent {
				if set.Contains(w) {
					t.Errorf("did not expect %q to be a stop word", w)
				}
			}
		})
	}

	if _, err := DefaultStopWords("klingon"); err == nil {
		t.Error("expected error for a language without a built-in list")
	}
}

func TestLoadStopWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.yaml")
	if err := os.WriteFile(path, []byte("terms:\n  - Foo\n  - bar\n  - \"  \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadStopWords(path)
	if err != nil {
		t.Fatalf("LoadStopWords failed: %v", err)
	}
	if set.Len() != 2 || !set.Contains("foo") || !set.Contains("BAR") {
		t.Errorf("unexpected set of %d words", set.Len())
	}

	if _, err := LoadStopWords(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStopWordSet_AddRemove(t *testing.T) {
	set := NewStopWordSet([]string{"a"})
	set.Add(" B ")
	set.Remove("A")

	if set.Contains("a") || !set.Contains("b") || set.Len() != 1 {
		t.Errorf("unexpected set state, len %d", set.Len())
	}

	var nilSet *StopWordSet
	if nilSet.Contains("a") || nilSet.Len() != 0 {
		t.Error("nil set should be empty")
	}
}
