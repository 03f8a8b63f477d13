// Package cipher implements the classical substitution ciphers exposed by
// cipherlab: Caesar (fixed shift) and Vigenère (repeating keyword shifts),
// plus the self-inverse ROT13 variant of Caesar.
//
// All transformations are pure functions over ASCII text. Letters are
// rotated within their case band, every other character is copied through
// unchanged, and the output always has exactly the length of the input.
// Both ciphers share one per-letter primitive, which keeps encrypt and
// decrypt exact inverses of each other.
package cipher
