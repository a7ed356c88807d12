package credential

import "testing"

// These tests live inside the package so they can instrument foldDiff's
// operation count directly. The property under test is positional
// independence: the number of byte positions touched depends only on
// max(len(a), len(b)), never on where the operands first differ.

func TestFoldDiff_StepsIndependentOfMismatchPosition(t *testing.T) {
	base := []byte("0123456789abcdef0123456789abcdef")

	var wantSteps int
	for pos := 0; pos < len(base); pos++ {
		other := append([]byte(nil), base...)
		other[pos] ^= 0xff

		diff, steps := foldDiff(base, other)
		if diff == 0 {
			t.Fatalf("operands differing at %d compared equal", pos)
		}
		if pos == 0 {
			wantSteps = steps
			continue
		}
		if steps != wantSteps {
			t.Fatalf("mismatch at position %d took %d steps, mismatch at 0 took %d",
				pos, steps, wantSteps)
		}
	}
}

func TestFoldDiff_StepsEqualMaxLength(t *testing.T) {
	cases := []struct{ a, b string }{
		{"", ""},
		{"a", ""},
		{"", "abcdef"},
		{"short", "a much longer operand"},
		{"same-length-aa", "same-length-bb"},
	}
	for _, tc := range cases {
		want := len(tc.a)
		if len(tc.b) > want {
			want = len(tc.b)
		}
		if _, steps := foldDiff([]byte(tc.a), []byte(tc.b)); steps != want {
			t.Errorf("foldDiff(%q, %q) touched %d positions, want %d", tc.a, tc.b, steps, want)
		}
	}
}

func TestFoldDiff_LengthDifferenceAloneIsUnequal(t *testing.T) {
	// A shorter operand that is a prefix of the longer one must still
	// compare unequal: the length XOR seeds the accumulator.
	diff, _ := foldDiff([]byte("abc"), []byte("abc\x00"))
	if diff == 0 {
		t.Error("prefix with trailing zero byte compared equal to its extension")
	}

	// All-zero operands of unequal length must also be unequal, whatever
	// the gap: the seed collapses the full-width length XOR, so no length
	// difference can vanish in truncation.
	diff, _ = foldDiff(make([]byte, 16), make([]byte, 4096))
	if diff == 0 {
		t.Error("all-zero operands of different lengths compared equal")
	}
}
