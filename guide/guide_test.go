package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	main, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, main, "cafeval Guide")

	rules, err := Get("rules")
	require.NoError(t, err)
	assert.Contains(t, rules, "Strictly ascending")

	_, err = Get("nonexistent")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"mcp", "rules"}, names)
}
