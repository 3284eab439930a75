package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesRenderer_Render(t *testing.T) {
	r := NewNotesRenderer()

	t.Run("blank notes", func(t *testing.T) {
		out, err := r.Render("   \n")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("formatting survives", func(t *testing.T) {
		out, err := r.Render("**Knee injury**, avoid squats\n- [x] waiver signed")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>Knee injury</strong>")
		assert.Contains(t, out, "waiver signed")
	})

	t.Run("scripts are stripped", func(t *testing.T) {
		out, err := r.Render("hello <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "hello")
	})

	t.Run("links get nofollow", func(t *testing.T) {
		out, err := r.Render("[plan](https://example.com/plan)")
		require.NoError(t, err)
		assert.Contains(t, out, `rel="nofollow`)
	})
}
