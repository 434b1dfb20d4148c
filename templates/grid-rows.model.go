package templates

import (
	"github.com/telsin/filegrid/pkg/filegrid/hgrid"
)

// the bare row fragments returned to the client grid widget when a
// folder is expanded. no page chrome.
type GridRowsTemplateModel struct {
	Rows []hgrid.Row
}
