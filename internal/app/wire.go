package app

import (
	"os"

	registrysvc "shoplist/internal/services/registry"
	"shoplist/internal/store"
)

// NewWire constructs the dependency graph from cfg. State is in-memory and
// lives for the session only.
func NewWire(cfg Config) *App {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	listStore := store.NewMemory()
	registry := registrysvc.New(listStore)

	return &App{
		Lists: registry,
		In:    in,
		Out:   out,
	}
}
