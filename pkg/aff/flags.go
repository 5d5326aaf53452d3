package aff

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Flag is an opaque rule identifier correlating dictionary entries with
// affix rules. The zero value ("") means "no flag" and never matches.
type Flag string

// FlagMode selects how a flag segment from a .dic line is decoded.
type FlagMode int

const (
	// FlagChar decodes every character as one flag (Hunspell default).
	FlagChar FlagMode = iota
	// FlagLong decodes pairs of characters as one flag (FLAG long).
	FlagLong
	// FlagNum decodes comma-separated decimal numbers (FLAG num).
	FlagNum
	// FlagUTF8 decodes every UTF-8 codepoint as one flag (FLAG UTF-8).
	FlagUTF8
)

func (m FlagMode) String() string {
	switch m {
	case FlagChar:
		return "char"
	case FlagLong:
		return "long"
	case FlagNum:
		return "num"
	case FlagUTF8:
		return "utf8"
	}
	return "unknown"
}

// ParseFlagMode maps a config string to a FlagMode.
func ParseFlagMode(s string) (FlagMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "char":
		return FlagChar, nil
	case "long":
		return FlagLong, nil
	case "num", "numeric":
		return FlagNum, nil
	case "utf8", "utf-8":
		return FlagUTF8, nil
	}
	return FlagChar, fmt.Errorf("unknown flag mode %q", s)
}

// FlagSet is an unordered set of flags with no duplicates.
type FlagSet map[Flag]struct{}

// NewFlagSet builds a set from the given flags. Empty flags are dropped.
func NewFlagSet(flags ...Flag) FlagSet {
	fs := make(FlagSet, len(flags))
	for _, f := range flags {
		if f != "" {
			fs[f] = struct{}{}
		}
	}
	return fs
}

// Has reports whether f is in the set. The empty flag is never present.
func (fs FlagSet) Has(f Flag) bool {
	if f == "" || fs == nil {
		return false
	}
	_, ok := fs[f]
	return ok
}

// Add inserts f into the set. No-op for the empty flag.
func (fs FlagSet) Add(f Flag) {
	if f != "" {
		fs[f] = struct{}{}
	}
}

// Union returns a new set containing the flags of fs and every other set.
func (fs FlagSet) Union(others ...FlagSet) FlagSet {
	out := make(FlagSet, len(fs))
	for f := range fs {
		out[f] = struct{}{}
	}
	for _, o := range others {
		for f := range o {
			out[f] = struct{}{}
		}
	}
	return out
}

// Sorted returns the flags in lexical order.
func (fs FlagSet) Sorted() []Flag {
	out := make([]Flag, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a canonical string for the set, usable as a map key when
// deduplicating flag sets across entries.
func (fs FlagSet) Key() string {
	flags := fs.Sorted()
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, "\x1f")
}

// parseFlags decodes a raw flag segment according to mode.
func parseFlags(segment string, mode FlagMode) (FlagSet, error) {
	fs := NewFlagSet()
	switch mode {
	case FlagChar, FlagUTF8:
		for _, r := range segment {
			fs.Add(Flag(string(r)))
		}
	case FlagLong:
		runes := []rune(segment)
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("odd-length long flag segment %q", segment)
		}
		for i := 0; i < len(runes); i += 2 {
			fs.Add(Flag(string(runes[i : i+2])))
		}
	case FlagNum:
		for _, part := range strings.Split(segment, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, err := strconv.Atoi(part); err != nil {
				return nil, fmt.Errorf("numeric flag segment %q: %w", segment, err)
			}
			fs.Add(Flag(part))
		}
	default:
		return nil, fmt.Errorf("unsupported flag mode %d", mode)
	}
	return fs, nil
}
