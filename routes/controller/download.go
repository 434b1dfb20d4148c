package controller

import (
	"net/http"

	"github.com/telsin/filegrid/pkg/filegrid/dltoken"
	. "github.com/telsin/filegrid/routes"
)

// downloads never stream file bytes through this process; the mirror
// only stores the url github serves the blob from, so all we do is
// check that the requester may have it & redirect.
func bindDownloadController(ctx *RouterContext) {
	http.HandleFunc("GET /component/{id}/download/{path...}", UseMiddleware(
		[]Middleware{Logged, RateLimit, ErrorGuard}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			cobj := resolveComponent(rc, w, r)
			if cobj == nil { return }
			p := r.PathValue("path")
			node, err := resolveFileNode(rc, cobj.Id, p)
			if err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			if node.IsFolder() {
				rc.ReportRouteError(NewRouteError(OTHER_ERROR, "Folders cannot be downloaded."), w, r)
				return
			}
			if cobj.IsPublic() {
				FoundAt(w, node.DownloadURL)
				return
			}
			claims, err := dltoken.Verify(rc.Config.DownloadTokenSecret, r.URL.Query().Get("token"))
			if err != nil {
				rc.ReportForbidden("Invalid or expired download token.", w, r)
				return
			}
			if claims.ComponentId != cobj.Id || claims.Path != p {
				rc.ReportForbidden("Invalid or expired download token.", w, r)
				return
			}
			if len(claims.Sha) <= 0 {
				FoundAt(w, node.DownloadURL)
				return
			}
			vs, err := rc.DatabaseInterface.GetAllFileVersion(cobj.Id, p)
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			for _, v := range vs {
				if v.Sha == claims.Sha {
					FoundAt(w, v.DownloadURL)
					return
				}
			}
			rc.ReportNotFound(claims.Sha, "File version", w, r)
		},
	))
}
