package profile

import (
	"errors"
	"fmt"
	"math"

	"cipherlab/internal/analysis"
)

// sumTolerance allows for rounding in published frequency tables, whose
// letter shares rarely sum to exactly 1.
const sumTolerance = 1e-3

var ErrInvalidProfile = errors.New("profile: invalid profile")

// Profile is a named reference distribution of letter frequencies.
type Profile struct {
	Name  string
	Table analysis.FrequencyTable
}

// Validate checks that the profile covers exactly the letters 'a'–'z' with
// positive frequencies summing to approximately 1.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	var sum float64
	for r := 'a'; r <= 'z'; r++ {
		f, ok := p.Table[r]
		if !ok {
			return fmt.Errorf("%w %q: missing letter %q", ErrInvalidProfile, p.Name, r)
		}
		if f <= 0 {
			return fmt.Errorf("%w %q: letter %q has non-positive frequency %v", ErrInvalidProfile, p.Name, r, f)
		}
		sum += f
	}
	if len(p.Table) != 26 {
		return fmt.Errorf("%w %q: %d entries outside a-z", ErrInvalidProfile, p.Name, len(p.Table)-26)
	}
	if math.Abs(sum-1) > sumTolerance {
		return fmt.Errorf("%w %q: frequencies sum to %v, want 1", ErrInvalidProfile, p.Name, sum)
	}
	return nil
}

// English returns the built-in English letter-frequency profile, using the
// widely published relative frequencies for English prose.
func English() Profile {
	return Profile{
		Name: "english",
		Table: analysis.FrequencyTable{
			'a': 0.08167, 'b': 0.01492, 'c': 0.02782, 'd': 0.04253,
			'e': 0.12702, 'f': 0.02228, 'g': 0.02015, 'h': 0.06094,
			'i': 0.06966, 'j': 0.00153, 'k': 0.00772, 'l': 0.04025,
			'm': 0.02406, 'n': 0.06749, 'o': 0.07507, 'p': 0.01929,
			'q': 0.00095, 'r': 0.05987, 's': 0.06327, 't': 0.09056,
			'u': 0.02758, 'v': 0.00978, 'w': 0.02360, 'x': 0.00150,
			'y': 0.01974, 'z': 0.00074,
		},
	}
}
