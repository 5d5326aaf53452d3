package aff

import (
	"strings"
	"unicode"
)

// CapType classifies a string's capitalization. It decides whether a stem
// needs case-insensitive indexing and drives compound/casing rules during
// lookup.
type CapType int

const (
	// CapNone means no capital letters ("cat").
	CapNone CapType = iota
	// CapInit means a single leading capital ("Cat").
	CapInit
	// CapAll means every cased letter is a capital ("CAT").
	CapAll
	// CapHuh means an irregular capital somewhere after the first
	// character ("caT").
	CapHuh
	// CapHuhInit means a leading capital plus irregular capitals ("CaT").
	CapHuhInit
)

func (t CapType) String() string {
	switch t {
	case CapNone:
		return "none"
	case CapInit:
		return "init"
	case CapAll:
		return "all"
	case CapHuh:
		return "huh"
	case CapHuhInit:
		return "huhinit"
	}
	return "unknown"
}

// Casing guesses capitalization and lowers strings. Lower returns one or
// more variants: some locales fold a single uppercase string to several
// candidate lowercase spellings.
type Casing interface {
	Guess(s string) CapType
	Lower(s string) []string
}

// BaseCasing is the default Unicode casing.
type BaseCasing struct{}

// Guess classifies the capitalization of s.
func (BaseCasing) Guess(s string) CapType { return guessCapType(s) }

// Lower returns the single standard-Unicode lowercase form of s.
func (BaseCasing) Lower(s string) []string {
	return []string{strings.ToLower(s)}
}

// TurkicCasing handles the dotted/dotless I pair: I lowers to ı and İ
// lowers to i. Everything else follows standard Unicode mapping.
type TurkicCasing struct{}

func (TurkicCasing) Guess(s string) CapType { return guessCapType(s) }

func (TurkicCasing) Lower(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'I':
			b.WriteRune('ı') // I -> ı
		case 'İ':
			b.WriteRune('i') // İ -> i
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return []string{b.String()}
}

func guessCapType(s string) CapType {
	var upper, lower int
	firstUpper := false
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper++
			if i == 0 {
				firstUpper = true
			}
		case unicode.IsLower(r):
			lower++
		}
	}
	switch {
	case upper == 0:
		return CapNone
	case lower == 0:
		return CapAll
	case upper == 1 && firstUpper:
		return CapInit
	case firstUpper:
		return CapHuhInit
	default:
		return CapHuh
	}
}
