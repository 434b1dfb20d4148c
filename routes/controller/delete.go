package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/telsin/filegrid/pkg/filegrid/log"
	. "github.com/telsin/filegrid/routes"
)

func bindDeleteController(ctx *RouterContext) {
	http.HandleFunc("POST /component/{id}/delete/{path...}", UseMiddleware(
		[]Middleware{Logged, RateLimit, LoginRequired, ErrorGuard}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			cobj := resolveComponent(rc, w, r)
			if cobj == nil { return }
			if viewerName(rc) != cobj.Owner && !rc.LoginInfo.IsAdmin {
				rc.ReportForbidden("Only the owner of a component can delete its files.", w, r)
				return
			}
			p := r.PathValue("path")
			node, err := resolveFileNode(rc, cobj.Id, p)
			if err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			if node.IsFolder() {
				rc.ReportRouteError(NewRouteError(OTHER_ERROR, "Folders cannot be deleted from here."), w, r)
				return
			}
			err = r.ParseForm()
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			returnTo := r.Form.Get("return")
			// only local targets; anything else falls back to the
			// files page.
			if !strings.HasPrefix(returnTo, "/") || strings.HasPrefix(returnTo, "//") {
				returnTo = filesPageURL(cobj.Id)
			}
			err = rc.DatabaseInterface.HardDeleteFile(cobj.Id, p)
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			rc.GridCache.Delete(rc.GridCacheKey(cobj.Id, node.ParentPath))
			if rc.Config.NotifyOnFileDelete && rc.Mailer != nil {
				// rc.LoginInfo is overwritten by the middleware of the
				// next request, so everything the mail needs has to be
				// snapshotted before the handler returns.
				title, body := deleteNotificationMail(rc.Config, cobj, p, viewerName(rc))
				dbif := rc.DatabaseInterface
				mailer := rc.Mailer
				owner := cobj.Owner
				componentId := cobj.Id
				go func() {
					u, err := dbif.GetUserByName(owner)
					if err != nil { log.ERR("Failed to look up owner of", componentId, "for delete notification:", err.Error()); return }
					err = mailer.SendPlainTextMail(u.Email, title, body)
					if err != nil { log.ERR("Failed to send delete notification for", componentId, ":", err.Error()) }
				}()
			}
			rc.ReportRedirect(returnTo, 3, "File Deleted", fmt.Sprintf("The file \"%s\" has been deleted.", p), w, r)
		},
	))
}
