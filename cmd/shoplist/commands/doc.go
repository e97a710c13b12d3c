// Package commands defines the shoplist CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - shoplist        Run the interactive menu loop
//   - shoplist demo   Seed example lists and print them
//
// # Implementation
//
// The root command builds the dependency graph (in-memory store, registry
// service) before any command runs, so handlers share one app context. All
// state is per-session; nothing is written to disk.
package commands
