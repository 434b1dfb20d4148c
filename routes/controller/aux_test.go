package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/model"
)

func TestEscapeTreePath(t *testing.T) {
	assert.Equal(t, "folder/file.txt", escapeTreePath("folder/file.txt"))
	assert.Equal(t, "a%20b/c%3Fd", escapeTreePath("a b/c?d"))
}

func TestPageURLHelpers(t *testing.T) {
	assert.Equal(t, "/component/c1/files", filesPageURL("c1"))
	assert.Equal(t, "/component/c1/grid", gridURL("c1"))
	assert.Equal(t, "/component/c1/history/a/b.txt", historyPageURL("c1", "a/b.txt"))
	assert.Equal(t, "/component/c1/delete/a/b.txt", deleteActionURL("c1", "a/b.txt"))
	assert.Equal(t, "/component/c1/download/a/b.txt?token=t%2Bk", downloadPageURL("c1", "a/b.txt", "t+k"))
	assert.Equal(t, "/component/c1/download/a/b.txt", downloadPageURL("c1", "a/b.txt", ""))
}

// the notification mail is composed at handler time and must keep
// naming the user who deleted the file, no matter who logs in while
// the send is still in flight.
func TestDeleteNotificationNamesDeleter(t *testing.T) {
	cfg := &filegrid.FilegridConfig{
		SiteName: "filegrid test",
		HttpHostName: "files.example.org",
	}
	cobj := &model.Component{
		Id: "c1",
		Title: "My Component",
		Owner: "alice",
	}
	title, body := deleteNotificationMail(cfg, cobj, "docs/plan.txt", "alice")
	assert.Equal(t, "[filegrid test] File deleted from My Component", title)
	assert.Contains(t, body, "deleted by alice")
	assert.Contains(t, body, "docs/plan.txt")
	assert.Contains(t, body, "http://files.example.org/component/c1/files")

	// a different viewer showing up later has no way into the
	// already-composed mail.
	_, later := deleteNotificationMail(cfg, cobj, "docs/plan.txt", "mallory")
	assert.NotContains(t, body, "mallory")
	assert.Contains(t, later, "deleted by mallory")
}
