package domain

import (
	"fmt"
	"strings"
)

// EaseCoefficients parameterize ease = Base - ASL*avgSentenceLen - ASW*avgSyllables.
type EaseCoefficients struct {
	Base float64 `json:"base" yaml:"base"`
	ASL  float64 `json:"asl" yaml:"asl"`
	ASW  float64 `json:"asw" yaml:"asw"`
}

// Language holds every language-specific constant the engine needs.
type Language struct {
	Name string
	// Vowels are counted as syllables.
	Vowels string
	// HardWordExclusions are suffixes that never make a word "hard"
	// (patronymics and similar compounds).
	HardWordExclusions []string
	Ease               EaseCoefficients
	// Abbreviations never end a sentence when followed by a period.
	Abbreviations []string
}

var (
	// Russian uses the Miroshnichenko adaptation of the Flesch formula.
	Russian = Language{
		Name:               "russian",
		Vowels:             "аеёиоуыэюя",
		HardWordExclusions: []string{"ович", "евич", "овна", "евна", "ична", "ьич"},
		Ease:               EaseCoefficients{Base: 208.7, ASL: 1.52, ASW: 65.14},
		Abbreviations: []string{
			"т", "д", "п", "е", "г", "гг", "др", "пр", "см", "ср", "им", "ул",
			"стр", "рис", "табл", "тыс", "млн", "млрд", "руб", "коп", "акад", "проф",
		},
	}

	English = Language{
		Name:   "english",
		Vowels: "aeiouy",
		Ease:   EaseCoefficients{Base: 206.835, ASL: 1.015, ASW: 84.6},
		Abbreviations: []string{
			"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc",
			"e.g", "i.e", "inc", "ltd", "co", "fig", "no",
		},
	}
)

var languages = map[string]Language{
	Russian.Name: Russian,
	English.Name: English,
}

// LookupLanguage returns the profile registered under name.
func LookupLanguage(name string) (Language, error) {
	lang, ok := languages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Language{}, fmt.Errorf("unsupported language: %q", name)
	}
	return lang, nil
}

// IsVowel reports whether r belongs to the language's vowel set.
func (l Language) IsVowel(r rune) bool {
	return strings.ContainsRune(l.Vowels, r)
}
