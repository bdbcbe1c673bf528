// Package app loads rsakit configuration and wires application dependencies
// for the CLI.
//
// It builds the key store and the high-level services from Config, exposing
// them via the Wire struct for commands to use.
package app
