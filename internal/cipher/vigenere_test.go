package cipher_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"cipherlab/internal/cipher"
)

func randKeyword(l int) string {
	var b strings.Builder
	b.Grow(l)
	for range l {
		b.WriteByte(byte('a' + rand.IntN(26)))
	}
	return b.String()
}

func TestVigenereEncrypt_KnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    string
	}{
		{"classic", "ATTACKATDAWN", "LEMON", "LXFOPVEFRNHR"},
		{"spaces advance the keyword", "I AM NIMRA", "KEY", "S YW LSQPK"},
		{"lowercase", "attack at dawn", "lemon", "lxfopv mh oeib"},
		{"case preserved", "Attack", "LEMON", "Lxfopv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cipher.VigenereEncrypt(tt.text, tt.keyword)
			if err != nil {
				t.Fatalf("VigenereEncrypt: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			back, err := cipher.VigenereDecrypt(got, tt.keyword)
			if err != nil {
				t.Fatalf("VigenereDecrypt: %v", err)
			}
			if back != tt.text {
				t.Fatalf("round trip: got %q, want %q", back, tt.text)
			}
		})
	}
}

func TestVigenere_NonLetterConsumesKeywordPosition(t *testing.T) {
	got, err := cipher.VigenereEncrypt("ab", "bc")
	if err != nil {
		t.Fatalf("VigenereEncrypt: %v", err)
	}
	if got != "bd" {
		t.Fatalf("got %q, want %q", got, "bd")
	}

	// The space consumes the 'c' slot, so the following b is shifted by
	// 'b' again rather than by 'c'.
	spaced, err := cipher.VigenereEncrypt("a b", "bc")
	if err != nil {
		t.Fatalf("VigenereEncrypt: %v", err)
	}
	if spaced != "b c" {
		t.Fatalf("got %q, want %q", spaced, "b c")
	}
}

func TestVigenere_EmptyText(t *testing.T) {
	got, err := cipher.VigenereEncrypt("", "key")
	if err != nil {
		t.Fatalf("VigenereEncrypt: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestVigenere_InvalidKeyword(t *testing.T) {
	for _, keyword := range []string{"", "123", "!?.", "4 2"} {
		if _, err := cipher.VigenereEncrypt("abc", keyword); !errors.Is(err, cipher.ErrInvalidKeyword) {
			t.Fatalf("VigenereEncrypt(%q): got %v, want ErrInvalidKeyword", keyword, err)
		}
		if _, err := cipher.VigenereDecrypt("abc", keyword); !errors.Is(err, cipher.ErrInvalidKeyword) {
			t.Fatalf("VigenereDecrypt(%q): got %v, want ErrInvalidKeyword", keyword, err)
		}
	}
}

func TestVigenere_KeywordNormalization(t *testing.T) {
	const text = "Meet me at the usual place at noon."
	want, err := cipher.VigenereEncrypt(text, "ky")
	if err != nil {
		t.Fatalf("VigenereEncrypt: %v", err)
	}
	got, err := cipher.VigenereEncrypt(text, "K3y!")
	if err != nil {
		t.Fatalf("VigenereEncrypt: %v", err)
	}
	if got != want {
		t.Fatalf("normalized keyword mismatch: %q != %q", got, want)
	}
}

func TestVigenere_RoundTrip_Random(t *testing.T) {
	for range 100 {
		text := randText(60)
		keyword := randKeyword(1 + rand.IntN(12))
		enc, err := cipher.VigenereEncrypt(text, keyword)
		if err != nil {
			t.Fatalf("VigenereEncrypt(%q, %q): %v", text, keyword, err)
		}
		if len(enc) != len(text) {
			t.Fatalf("length changed for keyword %q: %d != %d", keyword, len(enc), len(text))
		}
		dec, err := cipher.VigenereDecrypt(enc, keyword)
		if err != nil {
			t.Fatalf("VigenereDecrypt: %v", err)
		}
		if dec != text {
			t.Fatalf("round trip failed for keyword %q: %q != %q", keyword, dec, text)
		}
	}
}
