package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("# Title\n\nhello *world*"))
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>world</em>")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out := string(RenderMarkdown("hi <script>alert(1)</script>"))
	assert.NotContains(t, out, "<script>")
}

func TestRenderBlobCode(t *testing.T) {
	out := string(RenderBlob("main.go", "package main\n\nfunc main() {}\n"))
	assert.True(t, strings.Contains(out, "main"))
	assert.Contains(t, out, "<")
}

func TestRenderBlobPlainFallback(t *testing.T) {
	out := string(RenderBlob("README", "a < b"))
	assert.Contains(t, out, "<pre>")
	assert.Contains(t, out, "a &lt; b")
}

func TestRenderBlobOrg(t *testing.T) {
	out := string(RenderBlob("notes.org", "* Heading\n\ntext\n"))
	assert.Contains(t, out, "Heading")
}
