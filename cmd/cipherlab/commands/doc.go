// Package commands defines the cipherlab CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt    Encrypt text with a classical cipher
//   - decrypt    Decrypt text with a classical cipher
//   - analyze    Letter-frequency statistics of text or files
//   - crack      Recover a Caesar shift by frequency analysis
//   - profiles   List available reference frequency profiles
//
// # Implementation
//
// The root command sets up logging and builds the profile registry before
// any subcommand runs, so handlers share one app context. Input comes from
// --text, --file or stdin; output goes to stdout or --output.
package commands
