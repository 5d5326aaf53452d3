package aff

import "testing"

func TestSuffixAppliesTo(t *testing.T) {
	// English -ies pluralization: applies after consonant+y.
	sfx, err := NewSuffix("S", "y", "ies", "[^aeiou]y", true, nil)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		stem string
		want bool
	}{
		{"pony", true},
		{"city", true},
		{"day", false},
		{"cat", false},
	}
	for _, tc := range testCases {
		t.Run(tc.stem, func(t *testing.T) {
			if got := sfx.AppliesTo(tc.stem); got != tc.want {
				t.Errorf("AppliesTo(%q) = %v, want %v", tc.stem, got, tc.want)
			}
		})
	}
}

func TestPrefixAppliesTo(t *testing.T) {
	pfx, err := NewPrefix("P", "", "un", "[aeiou]", true, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !pfx.AppliesTo("apple") {
		t.Error("condition should match a vowel-initial stem")
	}
	if pfx.AppliesTo("cat") {
		t.Error("condition should reject a consonant-initial stem")
	}
}

func TestEmptyConditionAlwaysApplies(t *testing.T) {
	for _, cond := range []string{"", "."} {
		sfx, err := NewSuffix("S", "", "s", cond, true, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !sfx.AppliesTo("anything") {
			t.Errorf("condition %q should always apply", cond)
		}
	}
}

func TestBadConditionErrors(t *testing.T) {
	if _, err := NewSuffix("S", "", "s", "[unclosed", true, nil); err == nil {
		t.Error("expected error for a malformed condition")
	}
	if _, err := NewPrefix("P", "", "un", "[unclosed", true, nil); err == nil {
		t.Error("expected error for a malformed condition")
	}
}

func TestStripLen(t *testing.T) {
	sfx, err := NewSuffix("S", "iß", "x", "", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := sfx.StripLen(); got != 2 {
		t.Errorf("StripLen counts runes, got %d want 2", got)
	}
}

func TestAffixHasFlag(t *testing.T) {
	sfx, err := NewSuffix("S", "", "s", "", false, NewFlagSet("X"))
	if err != nil {
		t.Fatal(err)
	}
	if !sfx.HasFlag("X") {
		t.Error("contributed flag X should be present")
	}
	if sfx.HasFlag("Y") || sfx.HasFlag("") {
		t.Error("missing and empty flags should answer false")
	}
}
