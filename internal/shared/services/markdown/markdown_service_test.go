package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("# Title\n\n**bold** <script>alert(1)</script>\n\n| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<table>")
	assert.NotContains(t, out, "<script>")
}

func TestSanitizeDropsEventHandlers(t *testing.T) {
	svc := NewMarkdownService()

	out := svc.Sanitize(`<a href="https://example.com" onclick="steal()">link</a>`)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "https://example.com")
}

func TestStripTags(t *testing.T) {
	svc := NewMarkdownService()
	assert.Equal(t, "Great tool!", svc.StripTags("<b>Great</b> tool!"))
}
