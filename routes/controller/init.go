package controller

import (
	"github.com/telsin/filegrid/routes"
)

func InitializeRoute(context *routes.RouterContext) {
	bindIndexController(context)
	bindFilesController(context)
	bindGridController(context)
	bindHistoryController(context)
	bindBlobController(context)
	bindDeleteController(context)
	bindDownloadController(context)

	bindLoginController(context)
	bindLogoutController(context)
	bindStaticController(context)
}
