package dic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bastiangx/hunlex/pkg/aff"
)

// slashGuard temporarily replaces escaped slashes so the stem/flags split
// only sees real separators.
const slashGuard = "\x00"

// Word is one dictionary entry: a stem with its capitalization type and
// the optional flag set, morphological data and alternate spellings parsed
// from its line. The stem never mutates after construction; Flags, Data
// and AltSpellings stay nil unless the line carries them.
type Word struct {
	Stem    string
	CapType aff.CapType
	Flags   aff.FlagSet
	// Data holds key:value annotations with set semantics per key.
	Data map[string][]string
	// AltSpellings are plain ph: values, fed to suggestion generation.
	AltSpellings []string

	rules *aff.Aff
}

// ParseWord parses one raw dictionary line of the form
//
//	STEM[/FLAGS] [KEY:VALUE ...]
//
// where a literal slash inside STEM is escaped as "\/". The stem is
// normalized through the ruleset's ignore filter and classified for
// capitalization. ph: data tokens register replacement patterns on the
// ruleset as a side effect; bare numeric tokens resolve against the
// morphology-alias table. A line that does not match the grammar is a
// fatal format error, never a partial parse.
func ParseWord(line string, rules *aff.Aff) (*Word, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, fmt.Errorf("empty dictionary line")
	}

	fields := strings.Fields(trimmed)
	head := strings.ReplaceAll(fields[0], `\/`, slashGuard)

	stem := head
	flagSegment := ""
	if i := strings.IndexByte(head, '/'); i >= 0 {
		stem, flagSegment = head[:i], head[i+1:]
	}
	stem = strings.ReplaceAll(stem, slashGuard, "/")
	if stem == "" {
		return nil, fmt.Errorf("dictionary line %q: empty stem", line)
	}

	stem = rules.Ignore(stem)
	w := &Word{
		Stem:    stem,
		CapType: rules.Classify(stem),
		rules:   rules,
	}

	if flagSegment != "" {
		flags, err := rules.ParseFlags(strings.ReplaceAll(flagSegment, slashGuard, "/"))
		if err != nil {
			return nil, fmt.Errorf("dictionary line %q: %w", line, err)
		}
		if len(flags) > 0 {
			w.Flags = flags
		}
	}

	for _, token := range fields[1:] {
		w.parseDataToken(token, rules)
	}
	return w, nil
}

// parseDataToken handles one whitespace-delimited data token. Tokens that
// are neither key:value nor a morphology-alias number are ignored.
func (w *Word) parseDataToken(token string, rules *aff.Aff) {
	if key, value, ok := strings.Cut(token, ":"); ok && key != "" {
		w.addData(key, value)
		if key == "ph" {
			w.registerAltSpelling(value, rules)
		}
		return
	}
	if n, err := strconv.Atoi(token); err == nil {
		if components, ok := rules.MorphAlias(n); ok {
			for _, c := range components {
				w.addData(token, c)
			}
		}
	}
}

// registerAltSpelling implements the ph: side channel:
//
//   - "ph:prity*"       -> replacement ("prit", stem-minus-last-char);
//     the trailing 2 characters of the value and the last character of
//     the stem are trimmed (fixed widths, per the format)
//   - "ph:hepi->happi"  -> replacement ("hepi", "happi")
//   - "ph:wensday"      -> replacement ("wensday", stem), value also
//     recorded as an alternate spelling
func (w *Word) registerAltSpelling(value string, rules *aff.Aff) {
	switch {
	case strings.HasSuffix(value, "*"):
		rules.AddReplacement(trimLastRunes(value, 2), trimLastRunes(w.Stem, 1))
	case strings.Contains(value, "->"):
		from, to, _ := strings.Cut(value, "->")
		rules.AddReplacement(from, to)
	default:
		rules.AddReplacement(value, w.Stem)
		w.addAltSpelling(value)
	}
}

func (w *Word) addData(key, value string) {
	if w.Data == nil {
		w.Data = make(map[string][]string)
	}
	for _, v := range w.Data[key] {
		if v == value {
			return
		}
	}
	w.Data[key] = append(w.Data[key], value)
}

func (w *Word) addAltSpelling(value string) {
	for _, v := range w.AltSpellings {
		if v == value {
			return
		}
	}
	w.AltSpellings = append(w.AltSpellings, value)
}

// HasFlag reports whether the entry carries f. The empty flag and a
// flagless entry both answer false.
func (w *Word) HasFlag(f aff.Flag) bool { return w.Flags.Has(f) }

// Forms generates every surface form the entry's flags license: the bare
// stem, each applicable suffix alone, each applicable prefix alone, and
// every prefix+suffix pair where both rules are cross-product eligible.
// A crossed form never receives a further affix.
//
// A non-empty similarTo prunes the candidates to prefixes whose added text
// starts similarTo and suffixes whose added text ends it, for targeted
// generation against a known misspelling.
//
// The stem is always first; the rest of the order is not a contract.
func (w *Word) Forms(similarTo string) []string {
	res := []string{w.Stem}
	if len(w.Flags) == 0 {
		return res
	}

	var prefixes []*aff.Prefix
	var suffixes []*aff.Suffix
	for _, f := range w.Flags.Sorted() {
		for _, p := range w.rules.PrefixRules(f) {
			if p.AppliesTo(w.Stem) && (similarTo == "" || strings.HasPrefix(similarTo, p.Add)) {
				prefixes = append(prefixes, p)
			}
		}
		for _, s := range w.rules.SuffixRules(f) {
			if s.AppliesTo(w.Stem) && (similarTo == "" || strings.HasSuffix(similarTo, s.Add)) {
				suffixes = append(suffixes, s)
			}
		}
	}

	for _, s := range suffixes {
		res = append(res, trimLastRunes(w.Stem, s.StripLen())+s.Add)
	}
	for _, p := range prefixes {
		res = append(res, p.Add+trimFirstRunes(w.Stem, p.StripLen()))
	}
	for _, p := range prefixes {
		if !p.CrossProduct {
			continue
		}
		for _, s := range suffixes {
			if !s.CrossProduct {
				continue
			}
			root := trimLastRunes(trimFirstRunes(w.Stem, p.StripLen()), s.StripLen())
			res = append(res, p.Add+root+s.Add)
		}
	}
	return res
}

// FlagSets collects the distinct non-empty flag sets across words.
// Flagless entries are skipped; duplicate sets collapse to one.
func FlagSets(words []*Word) []aff.FlagSet {
	seen := make(map[string]struct{})
	var out []aff.FlagSet
	for _, w := range words {
		if len(w.Flags) == 0 {
			continue
		}
		key := w.Flags.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w.Flags)
	}
	return out
}

func trimLastRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[:len(r)-n])
}

func trimFirstRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}
