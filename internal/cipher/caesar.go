package cipher

import "strings"

// CaesarEncrypt shifts every ASCII letter in text forward by shift
// positions, wrapping modulo 26 and preserving case. Non-letter characters
// are copied through unchanged. Shifts of any sign or magnitude are valid;
// 27 behaves like 1, -1 like 25, and so on.
func CaesarEncrypt(text string, shift int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(shiftLetter(r, shift))
	}
	return b.String()
}

// CaesarDecrypt inverts CaesarEncrypt for the same shift. It runs the
// encryption with the opposite shift rather than carrying parallel logic,
// so the pair stays inverse for every input by construction.
func CaesarDecrypt(text string, shift int) string {
	return CaesarEncrypt(text, -normShift(shift))
}

// Rot13 applies the Caesar cipher with shift 13. Because 13 is half the
// alphabet, Rot13 is its own inverse.
func Rot13(text string) string {
	return CaesarEncrypt(text, 13)
}
