package credential

// ConstantTimeEqual reports whether a and b are equal byte sequences, in
// time that depends only on max(len(a), len(b)), never on the position of
// the first difference.
//
// Unlike [crypto/subtle.ConstantTimeCompare], which returns immediately for
// operands of unequal length, this comparison folds the length difference
// into the accumulator and still walks every byte position, padding the
// shorter operand with zeros. That closes the classic timing side-channel in
// credential verification.
func ConstantTimeEqual(a, b []byte) bool {
	diff, _ := foldDiff(a, b)
	return diff == 0
}

// ConstantTimeEqualString is [ConstantTimeEqual] for strings.
func ConstantTimeEqualString(a, b string) bool {
	return ConstantTimeEqual([]byte(a), []byte(b))
}

// foldDiff accumulates every difference between a and b into a single word.
// steps counts the byte positions touched; tests assert it equals
// max(len(a), len(b)) regardless of where the operands first differ.
func foldDiff(a, b []byte) (diff uint32, steps int) {
	// Seed with the length difference, collapsed from the full word so a
	// difference in the high bits alone still registers.
	lx := uint64(len(a)) ^ uint64(len(b))
	diff = uint32(lx) | uint32(lx>>32)

	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		diff |= uint32(av ^ bv)
		steps++
	}
	return diff, steps
}
