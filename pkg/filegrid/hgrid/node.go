package hgrid

// the grid renders hierarchical listings row by row. a Node is the
// input of exactly one row; the tree structure itself (ordering,
// which children are shown) is owned by the caller.

type NodeType int

const (
	NodeTypeFolder NodeType = 1
	NodeTypeFile NodeType = 2
)

type Node struct {
	Type NodeType
	// display label. untrusted; escaped before being put into the
	// fragment.
	Name string
	// depth in the tree. only used for the visual offset.
	Indent int
	// folders only.
	Collapsed bool
	// folders only. when false the folder is rendered redacted: the
	// real name must never appear in the output.
	CanView bool
	// files only. when empty the label is rendered as plain text.
	URL string
	// files only. lowercase extension without the dot.
	Ext string
	// opaque id that ties the toggle control back to this row.
	Uid string
}
