package analysis

// FrequencyTable maps lowercase ASCII letters to their relative frequency
// within some text. Only letters that actually occur are present, and the
// values sum to 1 whenever the table is non-empty.
type FrequencyTable map[rune]float64

// Frequencies counts the ASCII letters of text case-insensitively and
// returns each letter's share of the total letter count. Text without any
// letters yields an empty table rather than an error.
func Frequencies(text string) FrequencyTable {
	counts, total := letterCounts(text)
	table := make(FrequencyTable, len(counts))
	if total == 0 {
		return table
	}
	for r, n := range counts {
		table[r] = float64(n) / float64(total)
	}
	return table
}

// Letters returns the number of ASCII letters in text.
func Letters(text string) int {
	_, total := letterCounts(text)
	return total
}

// IndexOfCoincidence returns the probability that two distinct letter
// positions of text hold the same letter, Σ nᵢ(nᵢ−1) / (N(N−1)). English
// prose sits near 0.067, uniformly random letters near 0.038. Text with
// fewer than two letters scores 0.
func IndexOfCoincidence(text string) float64 {
	counts, total := letterCounts(text)
	if total < 2 {
		return 0
	}
	var sum float64
	for _, n := range counts {
		sum += float64(n) * float64(n-1)
	}
	return sum / (float64(total) * float64(total-1))
}

// letterCounts tallies ASCII letters case-folded to lowercase.
func letterCounts(text string) (map[rune]int, int) {
	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		default:
			continue
		}
		counts[r]++
		total++
	}
	return counts, total
}
