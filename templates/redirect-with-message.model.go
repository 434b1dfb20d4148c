package templates

import (
	"github.com/telsin/filegrid/pkg/filegrid"
)

type RedirectWithMessageModel struct {
	Config *filegrid.FilegridConfig
	LoginInfo *LoginInfoModel
	// seconds before the meta refresh fires. 0 means "immediately".
	Timeout int
	Title string
	Message string
	RedirectUrl string
}
