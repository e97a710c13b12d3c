package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// demo: seed a couple of lists, mark an item purchased and print the result.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed example lists and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := appCtx.Lists
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "--- Demo: creating lists, adding items, marking purchased ---")

			groceries, err := lists.CreateList("Groceries")
			if err != nil {
				return err
			}
			hardware, err := lists.CreateList("Hardware")
			if err != nil {
				return err
			}

			for _, seed := range []struct{ list, item string }{
				{groceries.Name, "Milk"},
				{groceries.Name, "Eggs"},
				{hardware.Name, "Nails"},
				{hardware.Name, "Hammer"},
			} {
				if _, err := lists.AddItemToList(seed.list, seed.item); err != nil {
					return err
				}
			}

			if err := lists.MarkItemPurchased("Groceries", "Milk"); err != nil {
				return err
			}

			fmt.Fprintln(out, lists.RenderAll())
			return nil
		},
	}
}
