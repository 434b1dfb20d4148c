package controller

import (
	"net/http"

	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/preview"
	. "github.com/telsin/filegrid/routes"
	"github.com/telsin/filegrid/templates"
)

func bindBlobController(ctx *RouterContext) {
	http.HandleFunc("GET /component/{id}/blob/{path...}", UseMiddleware(
		[]Middleware{Logged, UseLoginInfo, ErrorGuard}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			cobj := resolveComponent(rc, w, r)
			if cobj == nil { return }
			if err := checkComponentVisible(rc, cobj); err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			p := r.PathValue("path")
			node, err := resolveFileNode(rc, cobj.Id, p)
			if err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			if node.IsFolder() {
				FoundAt(w, filesPageURL(cobj.Id))
				return
			}
			content, err := rc.DatabaseInterface.GetFileContent(cobj.Id, p)
			if err != nil && !db.IsEntityNotFound(err) {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			rc.LoginInfo.IsOwner = viewerName(rc) == cobj.Owner
			LogTemplateError(rc.LoadTemplate("blob").Execute(w, templates.BlobTemplateModel{
				Config: rc.Config,
				LoginInfo: rc.LoginInfo,
				Component: cobj,
				FilePath: p,
				HistoryURL: historyPageURL(cobj.Id, p),
				Rendered: preview.RenderBlob(node.BaseName(), content),
			}))
		},
	))
}
