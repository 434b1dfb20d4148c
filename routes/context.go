package routes

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/mail"
	"github.com/telsin/filegrid/pkg/filegrid/session"
	"github.com/telsin/filegrid/pkg/tcache"
	"github.com/telsin/filegrid/templates"
)

type RouterContext struct {
	Config *filegrid.FilegridConfig
	MasterTemplate *template.Template
	DatabaseInterface db.FilegridDatabaseInterface
	SessionInterface session.FilegridSessionStore
	Mailer mail.FilegridMailerInterface
	RateLimiter *RateLimiter
	// rendered grid fragments, keyed by component id + parent path.
	// invalidated on file deletion; expiry covers trees rewritten by
	// the sync process behind our back.
	GridCache *tcache.TCache

	LoginInfo *templates.LoginInfoModel
	LastError error
}

func (ctx *RouterContext) LoadTemplate(name string) *template.Template {
	return ctx.MasterTemplate.Lookup(name)
}

func (ctx *RouterContext) ReportNotFound(objName string, objType string, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(404)
	LogTemplateError(ctx.LoadTemplate("error").Execute(w,
		templates.ErrorTemplateModel{
			ErrorCode: 404,
			ErrorMessage: fmt.Sprintf(
				"%s %s not found",
				objType, objName,
			),
		},
	))
}

func (ctx *RouterContext) ReportNormalError(msg string, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(400)
	LogTemplateError(ctx.LoadTemplate("error").Execute(w,
		templates.ErrorTemplateModel{
			ErrorCode: 400,
			ErrorMessage: fmt.Sprintf(
				"Error: %s",
				msg,
			),
		},
	))
}

func (ctx *RouterContext) ReportInternalError(msg string, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(500)
	LogTemplateError(ctx.LoadTemplate("error").Execute(w,
		templates.ErrorTemplateModel{
			ErrorCode: 500,
			ErrorMessage: fmt.Sprintf(
				"Internal error: %s",
				msg,
			),
		},
	))
}

func (ctx *RouterContext) ReportForbidden(msg string, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(403)
	LogTemplateError(ctx.LoadTemplate("error").Execute(w,
		templates.ErrorTemplateModel{
			ErrorCode: 403,
			ErrorMessage: fmt.Sprintf(
				"Forbidden: %s",
				msg,
			),
		},
	))
}

// ReportRouteError picks the right error page for `e`: RouteError
// values map onto their status code, anything else is a 500.
func (ctx *RouterContext) ReportRouteError(e error, w http.ResponseWriter, r *http.Request) {
	re, ok := e.(*RouteError)
	if !ok {
		ctx.ReportInternalError(e.Error(), w, r)
		return
	}
	switch re.ErrorType {
	case NOT_FOUND:
		w.WriteHeader(404)
		LogTemplateError(ctx.LoadTemplate("error").Execute(w,
			templates.ErrorTemplateModel{
				ErrorCode: 404,
				ErrorMessage: re.ErrorMsg,
			},
		))
	case FORBIDDEN:
		ctx.ReportForbidden(re.ErrorMsg, w, r)
	default:
		ctx.ReportNormalError(re.ErrorMsg, w, r)
	}
}

func (ctx *RouterContext) ReportRedirect(target string, timeout int, title string, message string, w http.ResponseWriter, r *http.Request) {
	LogTemplateError(ctx.LoadTemplate("redirect").Execute(w,
		templates.RedirectWithMessageModel{
			Config: ctx.Config,
			LoginInfo: ctx.LoginInfo,
			Timeout: timeout,
			Title: title,
			Message: message,
			RedirectUrl: target,
		},
	))
}

func (ctx *RouterContext) GridCacheKey(componentId string, parentPath string) string {
	return componentId + "\x00" + parentPath
}
