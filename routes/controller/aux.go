package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/hgrid"
	"github.com/telsin/filegrid/pkg/filegrid/model"
	"github.com/telsin/filegrid/pkg/fuzzytime"
	. "github.com/telsin/filegrid/routes"
)

// tree paths go into url paths segment by segment; the slashes in
// between must survive the escaping.
func escapeTreePath(p string) string {
	seg := strings.Split(p, "/")
	for i := range seg { seg[i] = url.PathEscape(seg[i]) }
	return strings.Join(seg, "/")
}

func filesPageURL(componentId string) string {
	return fmt.Sprintf("/component/%s/files", componentId)
}

func gridURL(componentId string) string {
	return fmt.Sprintf("/component/%s/grid", componentId)
}

func historyPageURL(componentId string, p string) string {
	return fmt.Sprintf("/component/%s/history/%s", componentId, escapeTreePath(p))
}

func blobPageURL(componentId string, p string) string {
	return fmt.Sprintf("/component/%s/blob/%s", componentId, escapeTreePath(p))
}

func deleteActionURL(componentId string, p string) string {
	return fmt.Sprintf("/component/%s/delete/%s", componentId, escapeTreePath(p))
}

func downloadPageURL(componentId string, p string, token string) string {
	res := fmt.Sprintf("/component/%s/download/%s", componentId, escapeTreePath(p))
	if len(token) > 0 { res += "?token=" + url.QueryEscape(token) }
	return res
}

// empty for anonymous viewers.
func viewerName(rc *RouterContext) string {
	if rc.LoginInfo == nil || !rc.LoginInfo.LoggedIn { return "" }
	return rc.LoginInfo.UserName
}

// whether the current viewer may see the file tree of `cobj`; the
// error (if any) goes straight to ReportRouteError.
func checkComponentVisible(rc *RouterContext, cobj *model.Component) error {
	if !cobj.VisibleTo(viewerName(rc)) {
		return NewRouteError(FORBIDDEN, "This component is private.")
	}
	return nil
}

// looks up a tree node by path. not-found comes back as a RouteError
// so callers can hand it to ReportRouteError as is.
func resolveFileNode(rc *RouterContext, componentId string, p string) (*model.TreeNode, error) {
	node, err := rc.DatabaseInterface.GetTreeNodeByPath(componentId, p)
	if err != nil {
		if db.IsEntityNotFound(err) {
			return nil, NewRouteError(NOT_FOUND, fmt.Sprintf("File %s not found", p))
		}
		return nil, err
	}
	return node, nil
}

// the mail sent to a component's owner when a file is deleted.
// `deleter` must be snapshotted by the caller at handler time; the
// send itself may happen after the handler has returned.
func deleteNotificationMail(cfg *filegrid.FilegridConfig, cobj *model.Component, p string, deleter string) (string, string) {
	title := fmt.Sprintf("[%s] File deleted from %s", cfg.SiteName, cobj.Title)
	body := fmt.Sprintf("The file \"%s\" of your component \"%s\" was deleted by %s.\n\nFile list: %s%s\n", p, cobj.Title, deleter, cfg.ProperHTTPHostName(), filesPageURL(cobj.Id))
	return title, body
}

// resolves the {id} path value into a component & reports when it
// can't. callers should bail out on nil.
func resolveComponent(rc *RouterContext, w http.ResponseWriter, r *http.Request) *model.Component {
	id := r.PathValue("id")
	if !model.ValidComponentId(id) {
		rc.ReportNormalError(fmt.Sprintf("Invalid component id: %s", id), w, r)
		return nil
	}
	c, err := rc.DatabaseInterface.GetComponentById(id)
	if err != nil {
		if db.IsEntityNotFound(err) {
			rc.ReportNotFound(id, "Component", w, r)
		} else {
			rc.ReportInternalError(err.Error(), w, r)
		}
		return nil
	}
	return c
}

func fileGrid() *hgrid.Grid {
	return &hgrid.Grid{
		Columns: []hgrid.ColumnDef{
			{ Name: "Name", Formatter: hgrid.NameCellFormatter },
			{ Name: "Modified", Width: "20%" },
		},
	}
}

// renders the direct children of `parentPath` into grid rows. files
// link to their preview page; the modified column carries the fuzzy
// time of the latest version. callers have already passed the
// component visibility check, so folder rows are viewable.
func buildChildRows(rc *RouterContext, cobj *model.Component, parentPath string) ([]hgrid.Row, error) {
	children, err := rc.DatabaseInterface.GetChildNodes(cobj.Id, parentPath)
	if err != nil { return nil, err }
	nodes := make([]*hgrid.Node, 0, len(children))
	values := make([][]string, 0, len(children))
	for _, tn := range children {
		n := &hgrid.Node{
			Name: tn.BaseName(),
			Indent: tn.Depth,
			Uid: tn.Uid,
		}
		modified := ""
		if tn.IsFolder() {
			n.Type = hgrid.NodeTypeFolder
			n.Collapsed = true
			n.CanView = true
		} else {
			n.Type = hgrid.NodeTypeFile
			n.Ext = tn.Ext
			n.URL = blobPageURL(cobj.Id, tn.Path)
			vs, err := rc.DatabaseInterface.GetAllFileVersion(cobj.Id, tn.Path)
			if err == nil && len(vs) > 0 {
				modified = fuzzytime.TimeToFuzzyTimeString(time.Unix(vs[0].Date, 0))
			}
		}
		nodes = append(nodes, n)
		values = append(values, []string{"", modified})
	}
	return fileGrid().RenderRows(nodes, values), nil
}
