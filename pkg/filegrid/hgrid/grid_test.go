package hgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKnownExtension(t *testing.T) {
	assert.True(t, IsKnownExtension("pdf"))
	assert.True(t, IsKnownExtension("zip"))
	assert.False(t, IsKnownExtension("xyz"))
	assert.False(t, IsKnownExtension(""))
	assert.False(t, IsKnownExtension("Pdf"))
}

func TestGridDefaultColumn(t *testing.T) {
	g := NewGrid()
	require.Len(t, g.Columns, 1)
	row := g.RenderRow(0, &Node{ Type: NodeTypeFile, Name: "a.pdf", Ext: "pdf" }, nil)
	require.Len(t, row.Cells, 1)
	assert.Contains(t, string(row.Cells[0]), "file_extension_pdf.png")
}

func TestGridExtraColumns(t *testing.T) {
	g := NewGrid()
	g.Columns = append(g.Columns, ColumnDef{ Name: "Modified" })
	rows := g.RenderRows(
		[]*Node{
			{ Type: NodeTypeFolder, Name: "docs", Collapsed: true, CanView: true, Uid: "1" },
			{ Type: NodeTypeFile, Name: "<r>.txt", Ext: "txt", Indent: 1, Uid: "2" },
		},
		[][]string{
			{ "", "3 days ago" },
			{ "", "just <now>" },
		},
	)
	require.Len(t, rows, 2)
	require.Len(t, rows[0].Cells, 2)
	assert.Contains(t, string(rows[0].Cells[0]), "data-hg-action=\"expand\"")
	assert.Equal(t, "3 days ago", string(rows[0].Cells[1]))
	// plain columns escape their text.
	assert.Equal(t, "just &lt;now&gt;", string(rows[1].Cells[1]))
	assert.Contains(t, string(rows[1].Cells[0]), "&lt;r&gt;.txt")
}

func TestGridMissingValues(t *testing.T) {
	g := NewGrid()
	g.Columns = append(g.Columns, ColumnDef{ Name: "Modified" })
	row := g.RenderRow(0, &Node{ Type: NodeTypeFile, Name: "a" }, nil)
	require.Len(t, row.Cells, 2)
	assert.Equal(t, "", string(row.Cells[1]))
}
