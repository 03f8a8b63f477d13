package cipher

import (
	"errors"
	"strings"
)

// ErrInvalidKeyword reports a Vigenère keyword without a single usable
// letter, which includes the empty keyword.
var ErrInvalidKeyword = errors.New("cipher: keyword must contain at least one letter")

// VigenereEncrypt enciphers text under a repeating keyword. The keyword is
// case-insensitive and characters outside A–Z are dropped from it; each of
// its letters contributes its alphabet index (a=0 … z=25) as the shift for
// one input position. The keyword position advances on every input
// character, non-letters included, even though non-letters are themselves
// copied through unchanged. Textbook Vigenère advances only on letters; the
// offbeat indexing here is kept deliberately so existing ciphertexts stay
// decryptable.
func VigenereEncrypt(text, keyword string) (string, error) {
	return vigenere(text, keyword, false)
}

// VigenereDecrypt inverts VigenereEncrypt for the same keyword. It derives
// the identical shift sequence and subtracts each shift instead of adding
// it, reducing modulo 26 to a non-negative result.
func VigenereDecrypt(text, keyword string) (string, error) {
	return vigenere(text, keyword, true)
}

// vigenere validates the keyword before touching the text, so a bad
// keyword never yields a partially transformed result.
func vigenere(text, keyword string, invert bool) (string, error) {
	key := normalizeKeyword(keyword)
	if len(key) == 0 {
		return "", ErrInvalidKeyword
	}

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, r := range text {
		shift := int(key[pos%len(key)] - 'a')
		if invert {
			shift = -shift
		}
		b.WriteRune(shiftLetter(r, shift))
		pos++
	}
	return b.String(), nil
}

// normalizeKeyword lowercases the keyword and keeps only ASCII letters, so
// every derived shift lands in [0, 25].
func normalizeKeyword(keyword string) []byte {
	key := make([]byte, 0, len(keyword))
	for i := 0; i < len(keyword); i++ {
		switch c := keyword[i]; {
		case c >= 'a' && c <= 'z':
			key = append(key, c)
		case c >= 'A' && c <= 'Z':
			key = append(key, c+'a'-'A')
		}
	}
	return key
}
