package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	In  io.Reader // interactive input; defaults to os.Stdin
	Out io.Writer // interactive output; defaults to os.Stdout
}
