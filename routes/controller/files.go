package controller

import (
	"net/http"

	. "github.com/telsin/filegrid/routes"
	"github.com/telsin/filegrid/templates"
)

func bindFilesController(ctx *RouterContext) {
	http.HandleFunc("GET /component/{id}/files", UseMiddleware(
		[]Middleware{Logged, UseLoginInfo, ErrorGuard}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			cobj := resolveComponent(rc, w, r)
			if cobj == nil { return }
			if err := checkComponentVisible(rc, cobj); err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			rc.LoginInfo.IsOwner = viewerName(rc) == cobj.Owner
			rows, err := buildChildRows(rc, cobj, "")
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			LogTemplateError(rc.LoadTemplate("files").Execute(w, templates.FilesTemplateModel{
				Config: rc.Config,
				LoginInfo: rc.LoginInfo,
				Component: cobj,
				Rows: rows,
				GridURL: gridURL(cobj.Id),
			}))
		},
	))
}
