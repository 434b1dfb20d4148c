package templates

import (
	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/model"
)

type FileVersionRowModel struct {
	Sha string
	ShortSha string
	Date int64
	AuthorEmail string
	DownloadURL string
}

type FileHistoryTemplateModel struct {
	Config *filegrid.FilegridConfig
	LoginInfo *LoginInfoModel
	Component *model.Component
	FilePath string
	VersionList []FileVersionRowModel
	// the fixed endpoint pair the delete confirmation posts to /
	// returns to.
	DeleteURL string
	FilesPageURL string
	// only the owner gets the delete control.
	CanDelete bool
}
