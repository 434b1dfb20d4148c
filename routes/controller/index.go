package controller

import (
	"net/http"

	. "github.com/telsin/filegrid/routes"
	"github.com/telsin/filegrid/templates"
)

func bindIndexController(ctx *RouterContext) {
	http.HandleFunc("GET /", UseMiddleware(
		[]Middleware{Logged, UseLoginInfo, ErrorGuard}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			cl, err := rc.DatabaseInterface.GetAllVisibleComponent(viewerName(rc))
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			LogTemplateError(rc.LoadTemplate("index").Execute(w, templates.IndexTemplateModel{
				Config: rc.Config,
				LoginInfo: rc.LoginInfo,
				ComponentList: cl,
			}))
		},
	))
}
