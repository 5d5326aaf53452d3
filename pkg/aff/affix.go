package aff

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Affix is the common surface of prefix and suffix rules as seen by a
// decomposition hypothesis: membership of a flag in the rule's contributed
// flag set.
type Affix interface {
	HasFlag(f Flag) bool
}

// Prefix is a rule prepending text to a stem. Strip is removed from the
// start of the stem before Add is prepended. The condition is matched
// against the start of the stem.
type Prefix struct {
	Flag         Flag
	Strip        string
	Add          string
	CrossProduct bool
	Flags        FlagSet

	cond *regexp.Regexp
}

// NewPrefix compiles a prefix rule. An empty or "." condition always
// applies. Flags is the rule's own contributed flag set and may be nil.
func NewPrefix(flag Flag, strip, add, condition string, crossProduct bool, flags FlagSet) (*Prefix, error) {
	cond, err := compileCondition(condition, true)
	if err != nil {
		return nil, fmt.Errorf("prefix %s: %w", flag, err)
	}
	return &Prefix{
		Flag:         flag,
		Strip:        strip,
		Add:          add,
		CrossProduct: crossProduct,
		Flags:        flags,
		cond:         cond,
	}, nil
}

// AppliesTo reports whether the rule's condition matches stem.
func (p *Prefix) AppliesTo(stem string) bool {
	return p.cond == nil || p.cond.MatchString(stem)
}

// StripLen is the number of characters Strip removes from the stem.
func (p *Prefix) StripLen() int { return utf8.RuneCountInString(p.Strip) }

// HasFlag reports whether the rule's own flag set contains f.
func (p *Prefix) HasFlag(f Flag) bool { return p.Flags.Has(f) }

// Suffix is a rule appending text to a stem. Strip is removed from the end
// of the stem before Add is appended. The condition is matched against the
// end of the stem.
type Suffix struct {
	Flag         Flag
	Strip        string
	Add          string
	CrossProduct bool
	Flags        FlagSet

	cond *regexp.Regexp
}

// NewSuffix compiles a suffix rule. An empty or "." condition always
// applies.
func NewSuffix(flag Flag, strip, add, condition string, crossProduct bool, flags FlagSet) (*Suffix, error) {
	cond, err := compileCondition(condition, false)
	if err != nil {
		return nil, fmt.Errorf("suffix %s: %w", flag, err)
	}
	return &Suffix{
		Flag:         flag,
		Strip:        strip,
		Add:          add,
		CrossProduct: crossProduct,
		Flags:        flags,
		cond:         cond,
	}, nil
}

// AppliesTo reports whether the rule's condition matches stem.
func (s *Suffix) AppliesTo(stem string) bool {
	return s.cond == nil || s.cond.MatchString(stem)
}

// StripLen is the number of characters Strip removes from the stem.
func (s *Suffix) StripLen() int { return utf8.RuneCountInString(s.Strip) }

// HasFlag reports whether the rule's own flag set contains f.
func (s *Suffix) HasFlag(f Flag) bool { return s.Flags.Has(f) }

// RepPattern is a (from, to) text-substitution pair collected for the
// suggestion subsystem.
type RepPattern struct {
	From string
	To   string
}

func compileCondition(condition string, atStart bool) (*regexp.Regexp, error) {
	if condition == "" || condition == "." {
		return nil, nil
	}
	var pattern string
	if atStart {
		pattern = "^(?:" + condition + ")"
	} else {
		pattern = "(?:" + condition + ")$"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("condition %q: %w", condition, err)
	}
	return re, nil
}
