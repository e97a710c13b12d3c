package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"shoplist/internal/domain"
)

const menu = `
Choose an action:
  1) Create shopping list
  2) Add item to a list
  3) Mark item as purchased
  4) Display all lists
  5) Exit
`

// Loop drives the registry from a textual menu.
type Loop struct {
	lists domain.Registry
	in    *bufio.Scanner
	out   io.Writer
}

// New returns a loop reading from in and writing to out.
func New(lists domain.Registry, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		lists: lists,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run shows the menu until the user exits or input ends. It never returns
// an error for a failed registry operation; those are printed and the loop
// continues.
func (l *Loop) Run() error {
	fmt.Fprintln(l.out, "Shopping List App")
	fmt.Fprintln(l.out, "-------------------")

	for {
		choice, ok := l.read(menu + "> ")
		if !ok {
			fmt.Fprintln(l.out, "\nExiting...")
			return nil
		}

		switch choice {
		case "1":
			name, ok := l.promptNonEmpty("Enter list name: ")
			if !ok {
				fmt.Fprintln(l.out, "\nExiting...")
				return nil
			}
			if _, err := l.lists.CreateList(name); err != nil {
				fmt.Fprintf(l.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(l.out, "Created list '%s'.\n", name)

		case "2":
			listName, ok := l.promptNonEmpty("Enter target list name: ")
			if !ok {
				fmt.Fprintln(l.out, "\nExiting...")
				return nil
			}
			itemName, ok := l.promptNonEmpty("Enter item name: ")
			if !ok {
				fmt.Fprintln(l.out, "\nExiting...")
				return nil
			}
			if _, err := l.lists.AddItemToList(listName, itemName); err != nil {
				fmt.Fprintf(l.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(l.out, "Added '%s' to list '%s'.\n", itemName, listName)

		case "3":
			listName, ok := l.promptNonEmpty("Enter target list name: ")
			if !ok {
				fmt.Fprintln(l.out, "\nExiting...")
				return nil
			}
			itemName, ok := l.promptNonEmpty("Enter item name to mark purchased: ")
			if !ok {
				fmt.Fprintln(l.out, "\nExiting...")
				return nil
			}
			if err := l.lists.MarkItemPurchased(listName, itemName); err != nil {
				fmt.Fprintf(l.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(l.out, "Marked '%s' as purchased in list '%s'.\n", itemName, listName)

		case "4":
			fmt.Fprintf(l.out, "\n%s\n\n", l.lists.RenderAll())

		case "5":
			fmt.Fprintln(l.out, "Goodbye!")
			return nil

		default:
			fmt.Fprintln(l.out, "Please choose a valid option (1-5).")
		}
	}
}

// read prints the prompt and returns the next trimmed line. ok is false
// once input is exhausted.
func (l *Loop) read(prompt string) (string, bool) {
	fmt.Fprint(l.out, prompt)
	if !l.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.in.Text()), true
}

// promptNonEmpty re-asks until the user enters a non-empty value. The core
// re-validates independently; this only spares the user a round trip.
func (l *Loop) promptNonEmpty(prompt string) (string, bool) {
	for {
		value, ok := l.read(prompt)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		fmt.Fprintln(l.out, "Input cannot be empty. Try again.")
	}
}
