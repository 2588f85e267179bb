package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownService_ToHTML(t *testing.T) {
	svc := NewMarkdownService()

	html, err := svc.ToHTML("# Heading\n\nSome **bold** text.")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Heading")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestMarkdownService_ToHTML_GFMTable(t *testing.T) {
	svc := NewMarkdownService()

	html, err := svc.ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}

func TestMarkdownService_Sanitize_StripsScript(t *testing.T) {
	svc := NewMarkdownService()

	out := svc.Sanitize(`<p>hello</p><script>alert("x")</script>`)

	assert.Contains(t, out, "<p>hello</p>")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
}

func TestMarkdownService_ToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("safe text\n\n<script>alert(1)</script>\n\n[link](javascript:alert(1))")
	require.NoError(t, err)

	assert.Contains(t, out, "safe text")
	assert.False(t, strings.Contains(out, "<script>"))
	assert.False(t, strings.Contains(out, "javascript:"))
}
