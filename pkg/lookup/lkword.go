/*
Package lookup holds the value types the lookup engine threads through a
spell check: the immutable tagged word handle carrying ruleset, dictionary
and casing context across string transformations, and the decomposition
hypothesis describing a candidate parse of a surface word into affixes
around a stem.
*/
package lookup

import (
	"strings"

	"github.com/bastiangx/hunlex/pkg/aff"
	"github.com/bastiangx/hunlex/pkg/dic"
)

// CompoundPos tags which slot of a compound word a handle occupies.
type CompoundPos int

const (
	// CompoundNone marks a non-compound context.
	CompoundNone CompoundPos = iota
	CompoundBegin
	CompoundMiddle
	CompoundEnd
)

func (p CompoundPos) String() string {
	switch p {
	case CompoundNone:
		return "none"
	case CompoundBegin:
		return "begin"
	case CompoundMiddle:
		return "middle"
	case CompoundEnd:
		return "end"
	}
	return "unknown"
}

// LKWord is an immutable string handle carrying the ruleset and dictionary
// references, the capitalization type and the compound position through
// every transformation a lookup applies. All methods return a new handle;
// none mutate.
type LKWord struct {
	word    string
	rules   *aff.Aff
	dict    *dic.Dic
	capType aff.CapType
	pos     CompoundPos
}

// NewLKWord wraps word with its lookup context. pos is CompoundNone for
// non-compound lookups.
func NewLKWord(word string, rules *aff.Aff, dict *dic.Dic, capType aff.CapType, pos CompoundPos) LKWord {
	return LKWord{word: word, rules: rules, dict: dict, capType: capType, pos: pos}
}

// Word returns the wrapped string.
func (w LKWord) Word() string { return w.word }

func (w LKWord) String() string { return w.word }

// Rules returns the shared ruleset reference.
func (w LKWord) Rules() *aff.Aff { return w.rules }

// Dic returns the shared dictionary reference.
func (w LKWord) Dic() *dic.Dic { return w.dict }

// CapType returns the capitalization classification of the handle.
func (w LKWord) CapType() aff.CapType { return w.capType }

// Pos returns the compound position tag.
func (w LKWord) Pos() CompoundPos { return w.pos }

// To rewraps a new underlying string, carrying every other field forward.
func (w LKWord) To(word string) LKWord {
	w.word = word
	return w
}

// ToTyped rewraps a new underlying string with an overridden
// capitalization type.
func (w LKWord) ToTyped(word string, capType aff.CapType) LKWord {
	w.word = word
	w.capType = capType
	return w
}

// Shift rewraps with only the compound position changed.
func (w LKWord) Shift(pos CompoundPos) LKWord {
	w.pos = pos
	return w
}

// Slice rewraps the character range [from, to). Negative indices count
// from the end; out-of-range bounds clamp.
func (w LKWord) Slice(from, to int) LKWord {
	runes := []rune(w.word)
	from = clampIndex(from, len(runes))
	to = clampIndex(to, len(runes))
	if from >= to {
		return w.To("")
	}
	return w.To(string(runes[from:to]))
}

// SliceFrom rewraps the characters from index from (negative counts from
// the end) through the end of the word.
func (w LKWord) SliceFrom(from int) LKWord {
	return w.Slice(from, w.Len())
}

// Replace substitutes the first occurrence of old, rewrapped.
func (w LKWord) Replace(old, new string) LKWord {
	return w.To(strings.Replace(w.word, old, new, 1))
}

// ReplaceAll substitutes every occurrence of old, rewrapped.
func (w LKWord) ReplaceAll(old, new string) LKWord {
	return w.To(strings.ReplaceAll(w.word, old, new))
}

// Add rewraps the wrapped string with s appended.
func (w LKWord) Add(s string) LKWord {
	return w.To(w.word + s)
}

// Concat rewraps the wrapped string with another handle's string
// appended, keeping this handle's context.
func (w LKWord) Concat(other LKWord) LKWord {
	return w.To(w.word + other.word)
}

// At returns the character at index n; negative n counts from the end.
// Out-of-range indices return 0.
func (w LKWord) At(n int) rune {
	runes := []rune(w.word)
	if n < 0 {
		n += len(runes)
	}
	if n < 0 || n >= len(runes) {
		return 0
	}
	return runes[n]
}

// Len is the character count of the wrapped string.
func (w LKWord) Len() int {
	return len([]rune(w.word))
}

// Runes returns the characters of the wrapped string for iteration.
func (w LKWord) Runes() []rune {
	return []rune(w.word)
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
