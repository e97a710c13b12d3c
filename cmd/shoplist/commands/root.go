package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"shoplist/internal/app"
	"shoplist/internal/cli"
)

var appCtx *app.App

func Execute() error {
	root := &cobra.Command{
		Use:   "shoplist",
		Short: "Manage shopping lists from an interactive menu",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.NewWire(app.Config{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// An interrupt during the blocking read ends the session
			// cleanly, same as end of input.
			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)
			defer signal.Stop(interrupts)
			go func() {
				<-interrupts
				fmt.Fprintln(appCtx.Out, "\nExiting...")
				os.Exit(0)
			}()

			return cli.New(appCtx.Lists, appCtx.In, appCtx.Out).Run()
		},
	}

	root.AddCommand(demoCmd())
	return root.Execute()
}
