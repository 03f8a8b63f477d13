// Package app wires application dependencies for the CLI.
//
// It builds the profile registry from Config and exposes it via the App
// struct for commands to use, including resolution of the active reference
// profile for cryptanalysis.
package app
