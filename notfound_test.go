package rustdocs_test

import (
	"testing"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundPage(t *testing.T) {
	t.Parallel()

	for _, marker := range rustdocs.NotFoundMarkers {
		t.Run(marker, func(t *testing.T) {
			t.Parallel()

			body := "<html><body><h1>" + marker + "</h1></body></html>"
			assert.True(t, rustdocs.IsNotFoundPage(body))
		})
	}

	t.Run("regular page", func(t *testing.T) {
		t.Parallel()

		body := `<html><body><main><h1>Crate tokio</h1><div class="docblock">A runtime.</div></main></body></html>`
		assert.False(t, rustdocs.IsNotFoundPage(body))
	})
}
