package aff

import "testing"

func TestGuessCapType(t *testing.T) {
	casing := BaseCasing{}

	testCases := []struct {
		input string
		want  CapType
	}{
		{"cat", CapNone},
		{"", CapNone},
		{"123", CapNone},
		{"Cat", CapInit},
		{"CAT", CapAll},
		{"C", CapAll},
		{"caT", CapHuh},
		{"cAt", CapHuh},
		{"CaT", CapHuhInit},
		{"openOffice", CapHuh},
		{"OpenOffice", CapHuhInit},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := casing.Guess(tc.input); got != tc.want {
				t.Errorf("Guess(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestBaseCasingLower(t *testing.T) {
	variants := BaseCasing{}.Lower("CaT")
	if len(variants) != 1 || variants[0] != "cat" {
		t.Errorf("Lower(CaT) = %v, want [cat]", variants)
	}
}

func TestTurkicCasingLower(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"ISPARTA", "ısparta"},
		{"İstanbul", "istanbul"},
		{"DIŞ", "dış"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			variants := TurkicCasing{}.Lower(tc.input)
			if len(variants) != 1 || variants[0] != tc.want {
				t.Errorf("Lower(%q) = %v, want [%s]", tc.input, variants, tc.want)
			}
		})
	}
}
