package templates

import (
	"github.com/telsin/filegrid/pkg/filegrid"
)

type LoginTemplateModel struct {
	Config *filegrid.FilegridConfig
	LoginInfo *LoginInfoModel
	ErrorMsg string
}
