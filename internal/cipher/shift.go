package cipher

// alphabetSize is the number of letters in an ASCII case band.
const alphabetSize = 26

// shiftLetter rotates an ASCII letter by shift positions within its case
// band, wrapping modulo 26. Any integer shift is accepted; it is reduced to
// its non-negative equivalent before use. Runes outside A–Z and a–z are
// returned unchanged.
func shiftLetter(r rune, shift int) rune {
	s := rune(normShift(shift))
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+s)%alphabetSize
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+s)%alphabetSize
	default:
		return r
	}
}

// normShift reduces an arbitrary shift to the range [0, 25].
func normShift(shift int) int {
	s := shift % alphabetSize
	if s < 0 {
		s += alphabetSize
	}
	return s
}
