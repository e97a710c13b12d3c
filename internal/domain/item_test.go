package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist/internal/domain"
)

func TestNewItem_TrimsAndStartsPending(t *testing.T) {
	item, err := domain.NewItem("  Milk  ")
	require.NoError(t, err)

	assert.Equal(t, "Milk", item.Name)
	assert.False(t, item.Purchased)
}

func TestNewItem_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := domain.NewItem(name)
		assert.ErrorIs(t, err, domain.ErrEmptyName, "name %q", name)
	}
}

func TestMarkPurchased_Idempotent(t *testing.T) {
	item, err := domain.NewItem("Milk")
	require.NoError(t, err)

	item.MarkPurchased()
	assert.True(t, item.Purchased)

	// Marking again changes nothing and must not fail.
	item.MarkPurchased()
	assert.True(t, item.Purchased)
}

func TestItem_String(t *testing.T) {
	item, err := domain.NewItem("Milk")
	require.NoError(t, err)

	assert.Equal(t, "- Milk (pending)", item.String())
	item.MarkPurchased()
	assert.Equal(t, "- Milk (purchased)", item.String())
}
