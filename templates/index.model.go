package templates

import (
	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/model"
)

type IndexTemplateModel struct {
	Config *filegrid.FilegridConfig
	LoginInfo *LoginInfoModel
	ComponentList []*model.Component
}
