// Package cli implements the interactive menu loop. It reads choices and
// names from an injected reader, drives the registry and writes results to
// an injected writer, which keeps the loop unit-testable with scripted
// input. Every registry error is rendered and the loop continues; only an
// explicit exit choice or end of input ends the session.
package cli
