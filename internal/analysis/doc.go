// Package analysis provides the letter-frequency side of cipherlab:
// relative frequency tables, the index of coincidence, chi-squared scoring
// against a reference distribution, and Caesar shift recovery built from
// those primitives.
//
// Everything here is a pure function of its inputs. Only ASCII letters are
// counted and case is folded away, so tables are always keyed by 'a'–'z'.
package analysis
