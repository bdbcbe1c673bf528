// Package commands defines the rsakit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate  Generate a key pair into key.public and key.private
//   - encrypt   Run the block transform over a file or stdin
//   - decrypt   Reverse encrypt with the other half of the pair
//   - inspect   Describe a key file without printing private material
//
// # Implementation
//
// The root command loads configuration (defaults, optional YAML file,
// RSAKIT_* environment, explicit flags) and builds the dependency graph
// (key store, services, logger) before any subcommand runs.
package commands
