package templates

import (
	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/hgrid"
	"github.com/telsin/filegrid/pkg/filegrid/model"
)

type FilesTemplateModel struct {
	Config *filegrid.FilegridConfig
	LoginInfo *LoginInfoModel
	Component *model.Component
	Rows []hgrid.Row
	// url the client grid widget requests folder contents from.
	GridURL string
}
