package controller

import (
	"net/http"

	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/model"
	"github.com/telsin/filegrid/pkg/filegrid/session"
	. "github.com/telsin/filegrid/routes"
	"github.com/telsin/filegrid/templates"
	"golang.org/x/crypto/bcrypt"
)

func bindLoginController(ctx *RouterContext) {
	http.HandleFunc("GET /login", WithLog(func(w http.ResponseWriter, r *http.Request) {
		loginInfo, err := GenerateLoginInfoModel(ctx, r)
		if err != nil {
			loginInfo = &templates.LoginInfoModel{}
		}
		if loginInfo.LoggedIn {
			FoundAt(w, "/")
			return
		}
		LogTemplateError(ctx.LoadTemplate("login").Execute(w, templates.LoginTemplateModel{
			Config: ctx.Config,
			LoginInfo: loginInfo,
		}))
	}))

	http.HandleFunc("POST /login", UseMiddleware(
		[]Middleware{Logged, RateLimit}, ctx,
		func(rc *RouterContext, w http.ResponseWriter, r *http.Request) {
			err := r.ParseForm()
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			un := r.Form.Get("username")
			ph := r.Form.Get("password")
			u, err := rc.DatabaseInterface.GetUserByName(un)
			if err != nil {
				if db.IsEntityNotFound(err) {
					LogTemplateError(rc.LoadTemplate("login").Execute(w, templates.LoginTemplateModel{
						Config: rc.Config,
						ErrorMsg: "Invalid username or password.",
					}))
				} else {
					rc.ReportInternalError(err.Error(), w, r)
				}
				return
			}
			if u.Status == model.BANNED {
				LogTemplateError(rc.LoadTemplate("login").Execute(w, templates.LoginTemplateModel{
					Config: rc.Config,
					ErrorMsg: "User suspended.",
				}))
				return
			}
			err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(ph))
			if err == bcrypt.ErrMismatchedHashAndPassword {
				LogTemplateError(rc.LoadTemplate("login").Execute(w, templates.LoginTemplateModel{
					Config: rc.Config,
					ErrorMsg: "Invalid username or password.",
				}))
				return
			} else if err != nil {
				LogTemplateError(rc.LoadTemplate("login").Execute(w, templates.LoginTemplateModel{
					Config: rc.Config,
					ErrorMsg: "Internal error: " + err.Error(),
				}))
				return
			}
			ss := session.NewSessionString()
			err = rc.SessionInterface.RegisterSession(un, ss)
			if err != nil {
				rc.ReportInternalError(err.Error(), w, r)
				return
			}
			w.Header().Add("Set-Cookie", (&http.Cookie{
				Name: COOKIE_KEY_SESSION,
				Value: ss,
				Path: "/",
				MaxAge: 3600,
				HttpOnly: true,
				Secure: true,
				SameSite: http.SameSiteDefaultMode,
			}).String())
			w.Header().Add("Set-Cookie", (&http.Cookie{
				Name: COOKIE_KEY_USERNAME,
				Value: un,
				Path: "/",
				MaxAge: 3600,
				HttpOnly: true,
				Secure: true,
				SameSite: http.SameSiteDefaultMode,
			}).String())
			FoundAt(w, "/")
		},
	))
}
