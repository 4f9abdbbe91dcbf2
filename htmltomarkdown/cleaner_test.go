package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/sitescrape"
	"github.com/fwojciec/sitescrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Cleaner implements sitescrape.Cleaner at compile time.
var _ sitescrape.Cleaner = (*htmltomarkdown.Cleaner)(nil)

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Docs</title></head><body><h1>Title</h1><h2>Subtitle</h2><p>Body</p></body></html>`

		page, err := htmltomarkdown.NewCleaner(nil).Clean(html)

		require.NoError(t, err)
		assert.Equal(t, "Docs", page.Title)
		assert.Contains(t, page.Text, "# Title")
		assert.Contains(t, page.Text, "## Subtitle")
		assert.Contains(t, page.Text, "Body")
	})

	t.Run("flattens links to text", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		page, err := htmltomarkdown.NewCleaner(nil).Clean(html)

		require.NoError(t, err)
		assert.Contains(t, page.Text, "Visit Example for more info.")
		assert.NotContains(t, page.Text, "https://example.com")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li><li>Third</li></ul>`

		page, err := htmltomarkdown.NewCleaner(nil).Clean(html)

		require.NoError(t, err)
		assert.Contains(t, page.Text, "First")
		assert.Contains(t, page.Text, "Second")
		assert.Contains(t, page.Text, "Third")
	})

	t.Run("drops page chrome and scripts", func(t *testing.T) {
		t.Parallel()

		html := `<header>Header</header><nav>Menu</nav><p>Content</p><script>evil()</script><footer>Footer</footer>`

		page, err := htmltomarkdown.NewCleaner(nil).Clean(html)

		require.NoError(t, err)
		assert.Equal(t, "Content", page.Text)
	})

	t.Run("empty page yields empty text and default title", func(t *testing.T) {
		t.Parallel()

		page, err := htmltomarkdown.NewCleaner(nil).Clean("")

		require.NoError(t, err)
		assert.Empty(t, page.Text)
		assert.Equal(t, sitescrape.DefaultTitle, page.Title)
	})
}
