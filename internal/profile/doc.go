// Package profile manages reference letter-frequency distributions used by
// cryptanalysis.
//
// A profile names a language (or any corpus) and carries the relative
// frequency of each letter 'a'–'z' within it. The English profile is built
// in; additional profiles are read-only YAML files resolved by name from a
// configurable directory:
//
//	name: english
//	frequencies:
//	  a: 0.08167
//	  b: 0.01492
//	  ...
package profile
