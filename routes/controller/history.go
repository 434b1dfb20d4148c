package controller

import (
	"net/http"
	"time"

	"github.com/telsin/filegrid/pkg/filegrid/dltoken"
	. "github.com/telsin/filegrid/routes"
	"github.com/telsin/filegrid/templates"
)

func bindHistoryController(ctx *RouterContext) {
	http.HandleFunc("GET /component/{id}/history/{path...}", UseMiddleware(
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
				rc.ReportRouteError(NewRouteError(OTHER_ERROR, "Folders have no version history."), w, r)
				return
			}
			vs, err := rc.DatabaseInterface.GetAllFileVersion(cobj.Id, p)
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			vl := make([]templates.FileVersionRowModel, 0, len(vs))
			for _, v := range vs {
				dlurl := v.DownloadURL
				if !cobj.IsPublic() {
					// private components don't expose the raw url;
					// the download goes through the token-checked
					// endpoint instead.
					tok, err := dltoken.New(
						rc.Config.DownloadTokenSecret,
						cobj.Id, p, v.Sha,
						time.Duration(rc.Config.DownloadTokenLifetimeMinute())*time.Minute,
					)
					if err != nil {
						rc.ReportInternalError(err.Error(), w, r)
						return
					}
					dlurl = downloadPageURL(cobj.Id, p, tok)
				}
				vl = append(vl, templates.FileVersionRowModel{
					Sha: v.Sha,
					ShortSha: v.ShortSha(),
					Date: v.Date,
					AuthorEmail: v.AuthorEmail,
					DownloadURL: dlurl,
				})
			}
			rc.LoginInfo.IsOwner = viewerName(rc) == cobj.Owner
			LogTemplateError(rc.LoadTemplate("file-history").Execute(w, templates.FileHistoryTemplateModel{
				Config: rc.Config,
				LoginInfo: rc.LoginInfo,
				Component: cobj,
				FilePath: p,
				VersionList: vl,
				DeleteURL: deleteActionURL(cobj.Id, p),
				FilesPageURL: filesPageURL(cobj.Id),
				CanDelete: rc.LoginInfo.IsOwner || rc.LoginInfo.IsAdmin,
			}))
		},
	))
}
