package lookup

import (
	"github.com/bastiangx/hunlex/pkg/aff"
	"github.com/bastiangx/hunlex/pkg/dic"
)

// AffixForm is one candidate parse of a surface string into at most two
// prefixes and two suffixes around a hypothesized stem, optionally
// anchored to a matched dictionary entry. Values are immutable; the With
// methods return modified copies so prior hypotheses stay valid during
// backtracking.
//
// Prefix and Suffix are the outer layer; Prefix2 and Suffix2 are the
// inner layer of a stacked parse. All rule and entry references are
// shared, never owned.
type AffixForm struct {
	text string
	stem string

	prefix  *aff.Prefix
	prefix2 *aff.Prefix
	suffix  *aff.Suffix
	suffix2 *aff.Suffix

	inDictionary *dic.Word
}

// NewAffixForm starts a hypothesis for text. An empty stem defaults to
// the surface text itself.
func NewAffixForm(text, stem string) AffixForm {
	if stem == "" {
		stem = text
	}
	return AffixForm{text: text, stem: stem}
}

// FormOf starts a hypothesis from a tagged word handle's string.
func FormOf(w LKWord) AffixForm {
	return NewAffixForm(w.Word(), "")
}

// Text returns the surface string being parsed.
func (f AffixForm) Text() string { return f.text }

// Stem returns the hypothesized stem.
func (f AffixForm) Stem() string { return f.stem }

// Prefix returns the outer prefix, nil when absent.
func (f AffixForm) Prefix() *aff.Prefix { return f.prefix }

// Prefix2 returns the inner prefix, nil when absent.
func (f AffixForm) Prefix2() *aff.Prefix { return f.prefix2 }

// Suffix returns the outer suffix, nil when absent.
func (f AffixForm) Suffix() *aff.Suffix { return f.suffix }

// Suffix2 returns the inner suffix, nil when absent.
func (f AffixForm) Suffix2() *aff.Suffix { return f.suffix2 }

// InDictionary returns the matched dictionary entry, nil when the
// hypothesis is not anchored yet.
func (f AffixForm) InDictionary() *dic.Word { return f.inDictionary }

// WithText returns a copy with the surface text substituted.
func (f AffixForm) WithText(text string) AffixForm {
	f.text = text
	return f
}

// WithStem returns a copy with the hypothesized stem substituted.
func (f AffixForm) WithStem(stem string) AffixForm {
	f.stem = stem
	return f
}

// WithPrefix returns a copy with the outer prefix substituted.
func (f AffixForm) WithPrefix(p *aff.Prefix) AffixForm {
	f.prefix = p
	return f
}

// WithPrefix2 returns a copy with the inner prefix substituted.
func (f AffixForm) WithPrefix2(p *aff.Prefix) AffixForm {
	f.prefix2 = p
	return f
}

// WithSuffix returns a copy with the outer suffix substituted.
func (f AffixForm) WithSuffix(s *aff.Suffix) AffixForm {
	f.suffix = s
	return f
}

// WithSuffix2 returns a copy with the inner suffix substituted.
func (f AffixForm) WithSuffix2(s *aff.Suffix) AffixForm {
	f.suffix2 = s
	return f
}

// WithDictionary returns a copy anchored to the matched entry.
func (f AffixForm) WithDictionary(w *dic.Word) AffixForm {
	f.inDictionary = w
	return f
}

// HasAffixes reports whether an outer prefix or outer suffix is present.
// Inner layers never occur without their outer layer given the stacking
// order, so the outer pair is the only check needed.
func (f AffixForm) HasAffixes() bool {
	return f.prefix != nil || f.suffix != nil
}

// Flags is the effective flag set a licensing check validates: the
// matched entry's own flags unioned with the flags contributed by the
// outer prefix and outer suffix.
func (f AffixForm) Flags() aff.FlagSet {
	flags := aff.NewFlagSet()
	if f.inDictionary != nil {
		flags = flags.Union(f.inDictionary.Flags)
	}
	if f.prefix != nil {
		flags = flags.Union(f.prefix.Flags)
	}
	if f.suffix != nil {
		flags = flags.Union(f.suffix.Flags)
	}
	return flags
}

// Affixes returns the present affixes in fixed order: inner prefix, outer
// prefix, outer suffix, inner suffix.
func (f AffixForm) Affixes() []aff.Affix {
	var out []aff.Affix
	if f.prefix2 != nil {
		out = append(out, f.prefix2)
	}
	if f.prefix != nil {
		out = append(out, f.prefix)
	}
	if f.suffix != nil {
		out = append(out, f.suffix)
	}
	if f.suffix2 != nil {
		out = append(out, f.suffix2)
	}
	return out
}

// Has reports whether every present affix carries flag. A hypothesis with
// no affixes answers false for every flag.
func (f AffixForm) Has(flag aff.Flag) bool {
	affixes := f.Affixes()
	if len(affixes) == 0 {
		return false
	}
	for _, a := range affixes {
		if !a.HasFlag(flag) {
			return false
		}
	}
	return true
}
