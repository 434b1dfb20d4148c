package controller

import (
	"net/http"

	. "github.com/telsin/filegrid/routes"
)

func bindLogoutController(ctx *RouterContext) {
	http.HandleFunc("GET /logout", WithLog(func(w http.ResponseWriter, r *http.Request) {
		un, err := GetUsernameFromCookie(r)
		if err == nil {
			sk, err := r.Cookie(COOKIE_KEY_SESSION)
			if err == nil {
				LogIfError(ctx.SessionInterface.RevokeSession(un, sk.Value))
			}
		}
		w.Header().Add("Set-Cookie", (&http.Cookie{
			Name: COOKIE_KEY_SESSION,
			Value: "",
			Path: "/",
			MaxAge: -1,
			HttpOnly: true,
			Secure: true,
			SameSite: http.SameSiteDefaultMode,
		}).String())
		w.Header().Add("Set-Cookie", (&http.Cookie{
			Name: COOKIE_KEY_USERNAME,
			Value: "",
			Path: "/",
			MaxAge: -1,
			HttpOnly: true,
			Secure: true,
			SameSite: http.SameSiteDefaultMode,
		}).String())
		FoundAt(w, "/")
	}))
}
