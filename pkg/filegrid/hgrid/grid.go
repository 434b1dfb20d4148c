package hgrid

import (
	"html/template"
)

// the grid proper. it owns nothing but column layout: the tree model
// stays with the caller, which hands over an already ordered and
// filtered list of nodes (one per visible row).

type ColumnDef struct {
	Name string
	// css width, e.g. "50%". empty means auto.
	Width string
	Formatter CellFormatter
}

// a CellFormatter is invoked once per row per column and emits the
// markup of that one cell. `value` is the raw cell text for plain
// columns; formatters that derive everything from the node (like the
// name column) may ignore it.
type CellFormatter func(row int, col int, value string, def ColumnDef, node *Node) template.HTML

// the default formatter for columns without one: escaped text.
func TextCellFormatter(row int, col int, value string, def ColumnDef, node *Node) template.HTML {
	return template.HTML(EscapeLabel(value))
}

// NameCellFormatter adapts Format to the per-cell calling convention.
func NameCellFormatter(row int, col int, value string, def ColumnDef, node *Node) template.HTML {
	return Format(*node)
}

type Row struct {
	Node *Node
	Cells []template.HTML
}

type Grid struct {
	Columns []ColumnDef
}

// NewGrid returns a grid with the default single name column.
func NewGrid() *Grid {
	return &Grid{
		Columns: []ColumnDef{
			{ Name: "Name", Formatter: NameCellFormatter },
		},
	}
}

func (g *Grid) formatterOf(col int) CellFormatter {
	f := g.Columns[col].Formatter
	if f == nil { return TextCellFormatter }
	return f
}

// RenderRow renders one row. `values` holds the raw cell text per
// column; missing trailing values render as empty cells.
func (g *Grid) RenderRow(rowIndex int, node *Node, values []string) Row {
	cells := make([]template.HTML, 0, len(g.Columns))
	for i := range g.Columns {
		v := ""
		if i < len(values) { v = values[i] }
		cells = append(cells, g.formatterOf(i)(rowIndex, i, v, g.Columns[i], node))
	}
	return Row{ Node: node, Cells: cells }
}

// RenderRows renders a whole visible listing in order.
func (g *Grid) RenderRows(nodes []*Node, values [][]string) []Row {
	res := make([]Row, 0, len(nodes))
	for i, n := range nodes {
		var v []string
		if i < len(values) { v = values[i] }
		res = append(res, g.RenderRow(i, n, v))
	}
	return res
}
