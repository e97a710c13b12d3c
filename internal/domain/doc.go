// Package domain defines the core shopping-list models and the contracts
// the rest of the app builds on. It contains plain types, sentinel errors
// and interfaces only; it performs no I/O.
package domain
