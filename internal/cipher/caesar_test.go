package cipher_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"cipherlab/internal/cipher"
)

// randText builds a string mixing letters, digits, punctuation and spaces.
func randText(l int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,;:!?'-"
	var b strings.Builder
	b.Grow(l)
	for range l {
		b.WriteByte(chars[rand.IntN(len(chars))])
	}
	return b.String()
}

func TestCaesarEncrypt_KnownVector(t *testing.T) {
	got := cipher.CaesarEncrypt("I AM NIMRA", 3)
	if want := "L DP QLPUD"; got != want {
		t.Fatalf("CaesarEncrypt: got %q, want %q", got, want)
	}
	if back := cipher.CaesarDecrypt(got, 3); back != "I AM NIMRA" {
		t.Fatalf("CaesarDecrypt: got %q, want %q", back, "I AM NIMRA")
	}
}

func TestCaesarEncrypt_PreservesCaseAndNonLetters(t *testing.T) {
	got := cipher.CaesarEncrypt("Hello, World! 123", 5)
	if want := "Mjqqt, Btwqi! 123"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCaesarEncrypt_EmptyText(t *testing.T) {
	if got := cipher.CaesarEncrypt("", 5); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestCaesar_ShiftNormalization(t *testing.T) {
	const text = "The five boxing wizards jump quickly."
	tests := []struct {
		name  string
		shift int
		same  int // equivalent shift in [0, 25]
	}{
		{"zero", 0, 0},
		{"full turn", 26, 0},
		{"negative full turn", -26, 0},
		{"wrapped", 29, 3},
		{"negative", -3, 23},
		{"large", 705, 3},
		{"large negative", -705, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cipher.CaesarEncrypt(text, tt.shift)
			want := cipher.CaesarEncrypt(text, tt.same)
			if got != want {
				t.Fatalf("shift %d: got %q, want %q (shift %d)", tt.shift, got, want, tt.same)
			}
			if back := cipher.CaesarDecrypt(got, tt.shift); back != text {
				t.Fatalf("round trip with shift %d: got %q", tt.shift, back)
			}
		})
	}
}

func TestCaesar_NonLetterPassthrough(t *testing.T) {
	in := "a1b2-c3!"
	got := cipher.CaesarEncrypt(in, 1)
	if want := "b1c2-d3!"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range in {
		if in[i] >= 'a' && in[i] <= 'z' {
			continue
		}
		if got[i] != in[i] {
			t.Fatalf("non-letter at %d changed: %q -> %q", i, in[i], got[i])
		}
	}
}

func TestCaesar_RoundTrip_Random(t *testing.T) {
	for range 100 {
		text := randText(40)
		shift := rand.IntN(2001) - 1000
		enc := cipher.CaesarEncrypt(text, shift)
		if len(enc) != len(text) {
			t.Fatalf("length changed for shift %d: %d != %d", shift, len(enc), len(text))
		}
		if got := cipher.CaesarDecrypt(enc, shift); got != text {
			t.Fatalf("round trip failed for shift %d: %q != %q", shift, got, text)
		}
	}
}

func TestRot13_SelfInverse(t *testing.T) {
	if got := cipher.Rot13("Hello"); got != "Uryyb" {
		t.Fatalf("Rot13: got %q, want %q", got, "Uryyb")
	}
	const text = "Pack my box with five dozen liquor jugs."
	if got := cipher.Rot13(cipher.Rot13(text)); got != text {
		t.Fatalf("double Rot13 changed text: %q", got)
	}
}

func TestCaesar_ConcurrentUse(t *testing.T) {
	const text = "Stateless functions need no locks."
	var g errgroup.Group
	for shift := range 26 {
		g.Go(func() error {
			enc := cipher.CaesarEncrypt(text, shift)
			if got := cipher.CaesarDecrypt(enc, shift); got != text {
				return fmt.Errorf("shift %d: got %q", shift, got)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
