package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)

	for _, r := range s {
		assert.True(t, strings.ContainsRune(alphabet, r))
	}
}

func TestNewInvoiceID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		inv, err := NewInvoiceID()
		require.NoError(t, err)
		assert.True(t, HasPrefix(inv, PrefixInvoice), inv)
		assert.False(t, seen[inv])
		seen[inv] = true
	}
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("inv_abc", "inv"))
	assert.False(t, HasPrefix("inv_", "inv"))
	assert.False(t, HasPrefix("rev_abc", "inv"))
	assert.False(t, HasPrefix("invabc", "inv"))
}
