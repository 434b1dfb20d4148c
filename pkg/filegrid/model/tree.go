package model

import (
	"path"
	"strings"
)

type TreeNodeType int

const (
	TREE_NODE_FOLDER TreeNodeType = 1
	TREE_NODE_FILE TreeNodeType = 2
)

// one entry of a component's mirrored file tree. the mirror is
// written by the sync process and only read by the web process
// (except for deletion, which removes rows).
type TreeNode struct {
	ComponentId string `json:"componentId"`
	// full path within the tree, no leading slash. folders carry no
	// trailing slash either.
	Path string `json:"path"`
	// path of the containing folder; empty for top-level entries.
	ParentPath string `json:"parentPath"`
	Type TreeNodeType `json:"type"`
	// lowercase extension without the dot; files only.
	Ext string `json:"ext"`
	// download url of the latest version; files only.
	DownloadURL string `json:"downloadUrl"`
	// opaque row id minted at sync time. wires the client-side
	// expand/collapse control back to this row.
	Uid string `json:"uid"`
	// depth within the tree. 0 for top-level entries.
	Depth int `json:"depth"`
	// mirrored text content of the latest version, for the preview
	// page. empty for binary files and folders.
	Content string `json:"-"`
}

func (n *TreeNode) IsFolder() bool {
	return n.Type == TREE_NODE_FOLDER
}

func (n *TreeNode) BaseName() string {
	return path.Base(n.Path)
}

// the extension of a path the way the grid expects it: lowercase, no
// dot, empty when there is none.
func PathExt(p string) string {
	e := path.Ext(p)
	if len(e) <= 0 { return "" }
	return strings.ToLower(e[1:])
}
