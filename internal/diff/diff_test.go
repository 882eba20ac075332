package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	t.Run("spaces removed", func(t *testing.T) {
		r := Fields(" Zum oNa,1, 2")
		assert.True(t, r.Changed())
		assert.Contains(t, r.Diff, `- " Zum oNa"`)
		assert.Contains(t, r.Diff, `+ "ZumoNa"`)
		assert.Contains(t, r.Diff, `  "1"`)
		assert.Contains(t, r.Diff, `- " 2"`)
		assert.Contains(t, r.Diff, `+ "2"`)
	})

	t.Run("already normalised", func(t *testing.T) {
		r := Fields("ZumoNa,1,2")
		assert.False(t, r.Changed())
		assert.Equal(t, "  \"ZumoNa\"\n  \"1\"\n  \"2\"\n", r.Diff)
	})

	t.Run("empty input", func(t *testing.T) {
		r := Fields("")
		assert.False(t, r.Changed())
		assert.Empty(t, r.Diff)
	})
}

func TestCompute(t *testing.T) {
	r := Compute("a\nb\nc\n", "a\nB\nc\n", "old", "new")
	assert.Equal(t, "  a\n- b\n+ B\n  c\n", r.Diff)
	assert.Equal(t, "--- old\n+++ new\n  a\n- b\n+ B\n  c\n", r.Format(false))
}

func TestColourise(t *testing.T) {
	out := Colourise("  a\n- b\n+ c\n")
	assert.Contains(t, out, "\033[31m- b\033[0m")
	assert.Contains(t, out, "\033[32m+ c\033[0m")
	assert.Contains(t, out, "  a\n")
}
