// Package app wires application dependencies for the CLI.
//
// It builds the in-memory store and the registry service from Config,
// exposing them through the App struct for commands to use.
package app
