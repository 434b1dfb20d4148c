package templates

import (
	ht "html/template"

	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/model"
)

type BlobTemplateModel struct {
	Config *filegrid.FilegridConfig
	LoginInfo *LoginInfoModel
	Component *model.Component
	FilePath string
	HistoryURL string
	Rendered ht.HTML
}
