package analysis

import (
	"sort"

	"cipherlab/internal/cipher"
)

// minExpected is the frequency assumed for letters the reference table has
// no entry for, so an unexpected letter is penalised instead of dividing
// by zero.
const minExpected = 1e-4

// Guess is one candidate Caesar decryption together with its chi-squared
// fit against a reference distribution. Lower scores fit better.
type Guess struct {
	Shift     int
	Plaintext string
	Score     float64
}

// ChiSquared measures how well the letter counts of text match the expected
// relative frequencies in ref, using the Σ (observed−expected)²/expected
// statistic across the alphabet. Text without letters scores 0.
func ChiSquared(text string, ref FrequencyTable) float64 {
	counts, total := letterCounts(text)
	if total == 0 {
		return 0
	}
	n := float64(total)
	var chi float64
	for r := 'a'; r <= 'z'; r++ {
		exp := ref[r]
		if exp <= 0 {
			if counts[r] == 0 {
				continue
			}
			exp = minExpected
		}
		expected := exp * n
		diff := float64(counts[r]) - expected
		chi += diff * diff / expected
	}
	return chi
}

// RankShifts decrypts ciphertext under all 26 Caesar shifts and orders the
// candidates by ascending chi-squared against ref, so the most plausible
// plaintext comes first. Equal scores keep the smaller shift first.
func RankShifts(ciphertext string, ref FrequencyTable) []Guess {
	guesses := make([]Guess, 0, 26)
	for shift := 0; shift < 26; shift++ {
		plaintext := cipher.CaesarDecrypt(ciphertext, shift)
		guesses = append(guesses, Guess{
			Shift:     shift,
			Plaintext: plaintext,
			Score:     ChiSquared(plaintext, ref),
		})
	}
	sort.SliceStable(guesses, func(i, j int) bool {
		return guesses[i].Score < guesses[j].Score
	})
	return guesses
}

// CrackCaesar returns the best-scoring candidate from RankShifts.
// Ciphertext without letters scores identically under every shift, so the
// zero shift wins and the input comes back unchanged.
func CrackCaesar(ciphertext string, ref FrequencyTable) Guess {
	return RankShifts(ciphertext, ref)[0]
}
