package lookup

import (
	"reflect"
	"testing"

	"github.com/bastiangx/hunlex/pkg/aff"
	"github.com/bastiangx/hunlex/pkg/dic"
)

func newHandle(word string) LKWord {
	rules := aff.New()
	return NewLKWord(word, rules, dic.New(rules), rules.Classify(word), CompoundNone)
}

func TestLKWordImmutability(t *testing.T) {
	w := newHandle("spelling")

	_ = w.Slice(0, 1)
	_ = w.Replace("s", "x")
	_ = w.Add("suffix")
	_ = w.Shift(CompoundEnd)
	_ = w.ToTyped("other", aff.CapAll)

	if w.Word() != "spelling" {
		t.Errorf("handle mutated: %q", w.Word())
	}
	if w.CapType() != aff.CapNone || w.Pos() != CompoundNone {
		t.Error("handle metadata mutated")
	}
}

func TestLKWordTo(t *testing.T) {
	w := newHandle("Word").Shift(CompoundBegin)

	moved := w.To("other")
	if moved.Word() != "other" {
		t.Errorf("To: word = %q", moved.Word())
	}
	if moved.CapType() != w.CapType() || moved.Pos() != CompoundBegin {
		t.Error("To must carry cap type and position forward")
	}
	if moved.Rules() != w.Rules() || moved.Dic() != w.Dic() {
		t.Error("To must carry the shared references forward")
	}

	retyped := w.ToTyped("other", aff.CapNone)
	if retyped.CapType() != aff.CapNone {
		t.Error("ToTyped must override the cap type")
	}
}

func TestLKWordSlice(t *testing.T) {
	w := newHandle("précis")

	testCases := []struct {
		name     string
		from, to int
		want     string
	}{
		{"head", 0, 2, "pr"},
		{"multibyte middle", 2, 4, "éc"},
		{"negative from", -3, 6, "cis"},
		{"negative to", 0, -1, "préci"},
		{"both negative", -3, -1, "ci"},
		{"empty when inverted", 4, 2, ""},
		{"clamped", 0, 99, "précis"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Slice(tc.from, tc.to).Word(); got != tc.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tc.from, tc.to, got, tc.want)
			}
		})
	}

	if got := w.SliceFrom(-2).Word(); got != "is" {
		t.Errorf("SliceFrom(-2) = %q, want %q", got, "is")
	}
}

func TestLKWordReplace(t *testing.T) {
	w := newHandle("banana")

	if got := w.Replace("an", "AN").Word(); got != "bANana" {
		t.Errorf("Replace = %q, want bANana", got)
	}
	if got := w.ReplaceAll("an", "AN").Word(); got != "bANANa" {
		t.Errorf("ReplaceAll = %q, want bANANa", got)
	}
	if got := w.Replace("an", "").Word(); got != "bana" {
		t.Errorf("Replace with empty = %q, want bana", got)
	}
}

func TestLKWordAddAndConcat(t *testing.T) {
	head := newHandle("over").Shift(CompoundBegin)
	tail := newHandle("flow").Shift(CompoundEnd)

	if got := head.Add("load").Word(); got != "overload" {
		t.Errorf("Add = %q", got)
	}
	joined := head.Concat(tail)
	if joined.Word() != "overflow" {
		t.Errorf("Concat = %q", joined.Word())
	}
	if joined.Pos() != CompoundBegin {
		t.Error("Concat keeps the receiver's context")
	}
}

func TestLKWordAtAndLen(t *testing.T) {
	w := newHandle("naïve")

	if w.Len() != 5 {
		t.Errorf("Len = %d, want 5 characters", w.Len())
	}
	if w.At(2) != 'ï' {
		t.Errorf("At(2) = %q", w.At(2))
	}
	if w.At(-1) != 'e' {
		t.Errorf("At(-1) = %q", w.At(-1))
	}
	if w.At(99) != 0 || w.At(-99) != 0 {
		t.Error("out-of-range At should return 0")
	}

	if got := w.Runes(); !reflect.DeepEqual(got, []rune("naïve")) {
		t.Errorf("Runes = %q", string(got))
	}
}
