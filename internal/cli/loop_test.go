package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist/internal/cli"
	registrysvc "shoplist/internal/services/registry"
	"shoplist/internal/store"
)

// run feeds the scripted lines to a fresh loop and returns everything it
// printed.
func run(t *testing.T, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out strings.Builder

	loop := cli.New(registrysvc.New(store.NewMemory()), in, &out)
	require.NoError(t, loop.Run())
	return out.String()
}

func TestRun_FullSession(t *testing.T) {
	out := run(t,
		"1", "Groceries",
		"2", "Groceries", "Milk",
		"2", "Groceries", "Eggs",
		"3", "Groceries", "Milk",
		"4",
		"5",
	)

	assert.Contains(t, out, "Shopping List App")
	assert.Contains(t, out, "Created list 'Groceries'.")
	assert.Contains(t, out, "Added 'Milk' to list 'Groceries'.")
	assert.Contains(t, out, "Added 'Eggs' to list 'Groceries'.")
	assert.Contains(t, out, "Marked 'Milk' as purchased in list 'Groceries'.")
	assert.Contains(t, out, "Shopping List: Groceries\n  - Milk (purchased)\n  - Eggs (pending)")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_ErrorsAreRecoverable(t *testing.T) {
	out := run(t,
		"3", "Missing", "X",
		"1", "Groceries",
		"5",
	)

	// The failed mark is reported and the loop keeps going.
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "list does not exist")
	assert.Contains(t, out, "Created list 'Groceries'.")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_DuplicateListReported(t *testing.T) {
	out := run(t,
		"1", "Groceries",
		"1", "GROCERIES",
		"5",
	)

	assert.Contains(t, out, "Created list 'Groceries'.")
	assert.Contains(t, out, "list already exists")
}

func TestRun_InvalidChoice(t *testing.T) {
	out := run(t, "9", "5")
	assert.Contains(t, out, "Please choose a valid option (1-5).")
}

func TestRun_EmptyInputReprompts(t *testing.T) {
	out := run(t,
		"1", "", "Groceries",
		"5",
	)

	assert.Contains(t, out, "Input cannot be empty. Try again.")
	assert.Contains(t, out, "Created list 'Groceries'.")
}

func TestRun_EndOfInputExitsCleanly(t *testing.T) {
	in := strings.NewReader("1\n") // input ends mid-prompt
	var out strings.Builder

	loop := cli.New(registrysvc.New(store.NewMemory()), in, &out)
	require.NoError(t, loop.Run())
	assert.Contains(t, out.String(), "Exiting...")
}

func TestRun_NoListsMessage(t *testing.T) {
	out := run(t, "4", "5")
	assert.Contains(t, out, "No shopping lists created yet.")
}
