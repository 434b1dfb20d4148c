package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathExt(t *testing.T) {
	assert.Equal(t, "pdf", PathExt("docs/report.PDF"))
	assert.Equal(t, "gz", PathExt("archive.tar.gz"))
	assert.Equal(t, "", PathExt("Makefile"))
	assert.Equal(t, "", PathExt(""))
}

func TestTreeNodeBaseName(t *testing.T) {
	n := &TreeNode{Path: "folder/sub/file.txt"}
	assert.Equal(t, "file.txt", n.BaseName())
	n = &TreeNode{Path: "toplevel"}
	assert.Equal(t, "toplevel", n.BaseName())
}

func TestComponentVisibleTo(t *testing.T) {
	pub := &Component{Id: "c1", Owner: "alice", Status: COMPONENT_PUBLIC}
	priv := &Component{Id: "c2", Owner: "alice", Status: COMPONENT_PRIVATE}
	assert.True(t, pub.VisibleTo(""))
	assert.True(t, pub.VisibleTo("bob"))
	assert.False(t, priv.VisibleTo(""))
	assert.False(t, priv.VisibleTo("bob"))
	assert.True(t, priv.VisibleTo("alice"))
}

func TestFileVersionShortSha(t *testing.T) {
	v := &FileVersion{Sha: "0123456789abcdef"}
	assert.Equal(t, "01234567", v.ShortSha())
	v = &FileVersion{Sha: "0123"}
	assert.Equal(t, "0123", v.ShortSha())
}

func TestValidComponentId(t *testing.T) {
	assert.True(t, ValidComponentId("abc123"))
	assert.False(t, ValidComponentId(""))
	assert.False(t, ValidComponentId("has space"))
	assert.False(t, ValidComponentId("slash/y"))
}
