package aff

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	testCases := []struct {
		name    string
		mode    FlagMode
		segment string
		want    []Flag
		wantErr bool
	}{
		{"char single", FlagChar, "A", []Flag{"A"}, false},
		{"char several", FlagChar, "ABC", []Flag{"A", "B", "C"}, false},
		{"char duplicates collapse", FlagChar, "AAB", []Flag{"A", "B"}, false},
		{"char empty", FlagChar, "", nil, false},
		{"utf8 codepoints", FlagUTF8, "äß", []Flag{"ß", "ä"}, false},
		{"long pairs", FlagLong, "AaBb", []Flag{"Aa", "Bb"}, false},
		{"long odd length", FlagLong, "AaB", nil, true},
		{"num list", FlagNum, "12,34,5", []Flag{"12", "34", "5"}, false},
		{"num trailing comma", FlagNum, "12,", []Flag{"12"}, false},
		{"num garbage", FlagNum, "12,xy", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFlags(tc.segment, tc.mode)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseFlags(%q) expected error, got %v", tc.segment, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags(%q): %v", tc.segment, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("parseFlags(%q) = %v, want %v", tc.segment, got.Sorted(), tc.want)
			}
			for _, f := range tc.want {
				if !got.Has(f) {
					t.Errorf("parseFlags(%q) missing flag %q", tc.segment, f)
				}
			}
		})
	}
}

func TestFlagSetHas(t *testing.T) {
	fs := NewFlagSet("A", "B")

	if !fs.Has("A") || !fs.Has("B") {
		t.Error("expected A and B present")
	}
	if fs.Has("C") {
		t.Error("C should be absent")
	}
	if fs.Has("") {
		t.Error("the empty flag is never present")
	}

	var nilSet FlagSet
	if nilSet.Has("A") {
		t.Error("nil set should answer false")
	}
}

func TestFlagSetUnion(t *testing.T) {
	a := NewFlagSet("A")
	b := NewFlagSet("B", "C")

	u := a.Union(b)
	for _, f := range []Flag{"A", "B", "C"} {
		if !u.Has(f) {
			t.Errorf("union missing %q", f)
		}
	}
	if a.Has("B") {
		t.Error("union must not mutate the receiver")
	}
}

func TestFlagSetKey(t *testing.T) {
	a := NewFlagSet("B", "A")
	b := NewFlagSet("A", "B")
	c := NewFlagSet("A")

	if a.Key() != b.Key() {
		t.Errorf("equal sets should share a key: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Error("distinct sets should have distinct keys")
	}
}

func TestParseFlagMode(t *testing.T) {
	testCases := []struct {
		input   string
		want    FlagMode
		wantErr bool
	}{
		{"", FlagChar, false},
		{"char", FlagChar, false},
		{"long", FlagLong, false},
		{"num", FlagNum, false},
		{"UTF-8", FlagUTF8, false},
		{"bogus", FlagChar, true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseFlagMode(tc.input)
			if tc.wantErr != (err != nil) {
				t.Fatalf("ParseFlagMode(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("ParseFlagMode(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
