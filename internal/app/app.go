package app

import (
	"io"

	"shoplist/internal/domain"
)

// App bundles the wired dependencies the CLI commands work against.
type App struct {
	Lists domain.Registry
	In    io.Reader
	Out   io.Writer
}
