package controller

import (
	"bytes"
	"net/http"

	. "github.com/telsin/filegrid/routes"
	"github.com/telsin/filegrid/templates"
)

// the endpoint the client grid widget requests folder contents from
// when a folder row is expanded. returns bare <tr> fragments, no page
// chrome. the result only depends on the component & the folder, so
// it's cached; deletion invalidates the folder's entry and expiry
// bounds the staleness caused by the sync process rewriting trees.
func bindGridController(ctx *RouterContext) {
	http.HandleFunc("GET /component/{id}/grid", UseMiddleware(
		[]Middleware{Logged, UseLoginInfo, ErrorGuard}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			cobj := resolveComponent(rc, w, r)
			if cobj == nil { return }
			if err := checkComponentVisible(rc, cobj); err != nil {
				rc.ReportRouteError(err, w, r)
				return
			}
			parentPath := r.URL.Query().Get("parent")
			w.Header().Add("Content-Type", "text/html; charset=utf-8")
			key := rc.GridCacheKey(cobj.Id, parentPath)
			if s, ok := rc.GridCache.Get(key); ok {
				w.Write([]byte(s))
				return
			}
			rows, err := buildChildRows(rc, cobj, parentPath)
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			var buf bytes.Buffer
			err = rc.LoadTemplate("grid-rows").Execute(&buf, templates.GridRowsTemplateModel{
				Rows: rows,
			})
			if err != nil {
				LogTemplateError(err)
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			rc.GridCache.Register(key, buf.String(), 0)
			w.Write(buf.Bytes())
		},
	))
}
