package hgrid

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLabelNoDoubleEncode(t *testing.T) {
	assert.Equal(t, "&lt;", EscapeLabel("<"))
	assert.Equal(t, "&gt;", EscapeLabel(">"))
	assert.Equal(t, "&amp;", EscapeLabel("&"))
	assert.Equal(t, "&amp;lt;", EscapeLabel("&lt;"))
	assert.Equal(t, "a &amp; b &lt;c&gt; &amp;&amp;", EscapeLabel("a & b <c> &&"))
	// escaping must never produce `&amp;lt;` out of a bare `<`.
	for _, s := range []string{"<", ">", "&", "<<>>&&", "&<>&", "x<y>&z"} {
		out := EscapeLabel(s)
		assert.NotContains(t, out, "&amp;lt;")
		assert.NotContains(t, out, "&amp;gt;")
	}
}

func TestSpacerWidth(t *testing.T) {
	for _, indent := range []int{0, 1, 2, 5, 13} {
		out := string(Format(Node{ Type: NodeTypeFile, Name: "a", Indent: indent }))
		assert.Contains(t, out, fmt.Sprintf("width:%dpx", indent*18))
	}
	// malformed negative indent degrades to zero offset.
	out := string(Format(Node{ Type: NodeTypeFile, Name: "a", Indent: -3 }))
	assert.Contains(t, out, "width:0px")
}

func TestFolderCollapsedViewable(t *testing.T) {
	out := string(Format(Node{
		Type: NodeTypeFolder,
		Name: "Docs",
		Indent: 1,
		Collapsed: true,
		CanView: true,
		Uid: "7",
	}))
	assert.Contains(t, out, "width:18px")
	assert.Contains(t, out, "data-hg-action=\"expand\"")
	assert.Contains(t, out, "data-hg-uid=\"7\"")
	assert.Contains(t, out, "folder.png")
	assert.Contains(t, out, "hgrid-folder-open")
	assert.Contains(t, out, "Docs")
}

func TestFolderExpandedViewable(t *testing.T) {
	out := string(Format(Node{
		Type: NodeTypeFolder,
		Name: "Docs",
		Collapsed: false,
		CanView: true,
		Uid: "9",
	}))
	assert.Contains(t, out, "data-hg-action=\"collapse\"")
	// the closed-folder drawing belongs to the expanded state.
	assert.Contains(t, out, "folder_close.png")
	assert.Contains(t, out, "Docs")
}

func TestFolderRedaction(t *testing.T) {
	for _, collapsed := range []bool{true, false} {
		out := string(Format(Node{
			Type: NodeTypeFolder,
			Name: "SecretProject",
			Collapsed: collapsed,
			CanView: false,
			Uid: "3",
		}))
		assert.NotContains(t, out, "SecretProject")
		assert.Contains(t, out, PrivateFolderLabel)
		assert.Contains(t, out, "folder_delete.png")
		// no expand/collapse control on redacted rows.
		assert.NotContains(t, out, "data-hg-action")
		assert.Contains(t, out, "hgrid-toggle-space")
	}
}

func TestFileIconSelection(t *testing.T) {
	out := string(Format(Node{ Type: NodeTypeFile, Name: "r.pdf", Ext: "pdf" }))
	assert.Contains(t, out, "file_extension_pdf.png")
	out = string(Format(Node{ Type: NodeTypeFile, Name: "r.xyz", Ext: "xyz" }))
	assert.Contains(t, out, "file.png")
	assert.NotContains(t, out, "file_extension")
	// missing ext on a file falls back to the generic icon too.
	out = string(Format(Node{ Type: NodeTypeFile, Name: "r" }))
	assert.Contains(t, out, "file.png")
}

func TestFileLink(t *testing.T) {
	out := string(Format(Node{ Type: NodeTypeFile, Name: "a<b", URL: "http://x" }))
	assert.Contains(t, out, "href=\"http://x\"")
	assert.Contains(t, out, "a&lt;b")
	out = string(Format(Node{ Type: NodeTypeFile, Name: "a<b" }))
	assert.NotContains(t, out, "<a ")
	assert.Contains(t, out, "a&lt;b")
}

func TestUnknownNodeType(t *testing.T) {
	out := string(Format(Node{ Name: "orphan & co" }))
	assert.Contains(t, out, "orphan &amp; co")
	assert.NotContains(t, out, "<img")
}

func TestUntrustedExtNeverReachesIconPath(t *testing.T) {
	// ext is interpolated into the icon path only when it is a
	// member of the known set.
	p := FileIconPath("../../etc/passwd\" onerror=\"x")
	assert.Equal(t, IconBasePath+"file.png", p)
	p = FileIconPath("PDF")
	assert.Equal(t, IconBasePath+"file.png", p, "membership is case-sensitive")
	p = FileIconPath("pdf")
	assert.Equal(t, IconBasePath+"file_extension_pdf.png", p)
}

func TestFormatEndToEnd(t *testing.T) {
	out := string(Format(Node{
		Type: NodeTypeFolder,
		Collapsed: true,
		CanView: true,
		Uid: "7",
		Name: "Docs",
		Indent: 1,
	}))
	require.True(t, strings.Contains(out, "width:18px"))
	require.True(t, strings.Contains(out, "data-hg-action=\"expand\""))
	require.True(t, strings.Contains(out, "data-hg-uid=\"7\""))
	require.True(t, strings.Contains(out, "hgrid-folder-open"))
	require.True(t, strings.Contains(out, "Docs"))
}

func TestFormatIsDeterministic(t *testing.T) {
	n := Node{ Type: NodeTypeFile, Name: "x&y.pdf", Ext: "pdf", URL: "http://x", Indent: 2, Uid: "u" }
	a := Format(n)
	b := Format(n)
	assert.Equal(t, a, b)
}
