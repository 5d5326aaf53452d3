/*
Package aff holds the affix-ruleset surface consumed by the dictionary and
lookup packages: flags and flag decoding, capitalization classification,
prefix/suffix rule tables, the replacement-pattern collection, and the
morphology-alias table.

Parsing of .aff rule files is out of scope here; rulesets are assembled
programmatically (or by an external compiler) through AddPrefix, AddSuffix
and the exported fields.
*/
package aff

import "strings"

// Aff aggregates the ruleset tables the word-model core consumes. It is
// built once and then read; it is shared by reference across entries,
// indexes, hypotheses and word handles, never copied per entry.
type Aff struct {
	// FlagMode selects the decoding of flag segments in .dic lines.
	FlagMode FlagMode
	// Casing classifies and lowers stems. Defaults to BaseCasing.
	Casing Casing
	// Replacements collects (from, to) pairs for the suggestion
	// subsystem. ph: directives in .dic lines append to it.
	Replacements []RepPattern
	// MorphAliases is the 1-based AM alias table: a bare numeric data
	// token in a .dic line expands to the component strings of the
	// referenced alias.
	MorphAliases [][]string

	ignore   map[rune]struct{}
	prefixes map[Flag][]*Prefix
	suffixes map[Flag][]*Suffix
}

// New returns an empty ruleset with char flag mode and base Unicode casing.
func New() *Aff {
	return &Aff{
		FlagMode: FlagChar,
		Casing:   BaseCasing{},
		prefixes: make(map[Flag][]*Prefix),
		suffixes: make(map[Flag][]*Suffix),
	}
}

// SetIgnore designates characters the normalization filter strips from
// stems (the IGNORE directive, e.g. Arabic diacritics).
func (a *Aff) SetIgnore(chars string) {
	a.ignore = make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		a.ignore[r] = struct{}{}
	}
}

// Ignore strips every designated ignore character from s. Without an
// ignore set it returns s unchanged.
func (a *Aff) Ignore(s string) string {
	if len(a.ignore) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, drop := a.ignore[r]; !drop {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify guesses the capitalization type of s.
func (a *Aff) Classify(s string) CapType { return a.Casing.Guess(s) }

// Lower returns every lowercase variant of s the configured casing
// produces.
func (a *Aff) Lower(s string) []string { return a.Casing.Lower(s) }

// ParseFlags decodes a flag segment per the configured flag mode.
func (a *Aff) ParseFlags(segment string) (FlagSet, error) {
	return parseFlags(segment, a.FlagMode)
}

// AddPrefix registers a prefix rule under its flag.
func (a *Aff) AddPrefix(p *Prefix) {
	a.prefixes[p.Flag] = append(a.prefixes[p.Flag], p)
}

// AddSuffix registers a suffix rule under its flag.
func (a *Aff) AddSuffix(s *Suffix) {
	a.suffixes[s.Flag] = append(a.suffixes[s.Flag], s)
}

// PrefixRules returns the prefix rules keyed by f, nil when none.
func (a *Aff) PrefixRules(f Flag) []*Prefix { return a.prefixes[f] }

// SuffixRules returns the suffix rules keyed by f, nil when none.
func (a *Aff) SuffixRules(f Flag) []*Suffix { return a.suffixes[f] }

// AddReplacement appends a (from, to) pair to the replacement-pattern
// collection.
func (a *Aff) AddReplacement(from, to string) {
	a.Replacements = append(a.Replacements, RepPattern{From: from, To: to})
}

// MorphAlias resolves a 1-based alias number to its component strings.
func (a *Aff) MorphAlias(n int) ([]string, bool) {
	if n < 1 || n > len(a.MorphAliases) {
		return nil, false
	}
	return a.MorphAliases[n-1], true
}
