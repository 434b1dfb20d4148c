package routes

import (
	"html/template"
	"log"
	"net/http"

	"github.com/telsin/filegrid/pkg/filegrid/model"
	"github.com/telsin/filegrid/templates"
)

const COOKIE_KEY_USERNAME = "filegrid_username"
const COOKIE_KEY_SESSION = "filegrid_session"

func LogIfError(err error) {
	if err != nil {
		log.Print(err.Error())
	}
}

func WithLog(f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf(" %s %s %s\n", r.RemoteAddr, r.Method, r.URL.Path)
		f(w, r)
	}
}

func WithLogHandler(f http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf(" %s %s %s\n", r.RemoteAddr, r.Method, r.URL.Path)
		f.ServeHTTP(w, r)
	}
}

func FoundAt(w http.ResponseWriter, p string) {
	w.Header().Add("Content-Length", "0")
	w.Header().Add("Location", p)
	w.WriteHeader(302)
}

func LoadTemplate(t *template.Template, name string) *template.Template {
	res := t.Lookup(name)
	if res == nil { log.Fatalf("Failed to find template \"%s\"", name) }
	return res
}

func LogTemplateError(e error) {
	if e != nil { log.Print(e) }
}

func GetUsernameFromCookie(r *http.Request) (string, error) {
	s, err := r.Cookie(COOKIE_KEY_USERNAME)
	if err != nil { return "", err }
	return s.Value, nil
}

func CheckUserSession(ctx *RouterContext, r *http.Request) (bool, error) {
	un, err := GetUsernameFromCookie(r)
	if err == http.ErrNoCookie { return false, nil }
	if err != nil { return false, err }
	s, err := r.Cookie(COOKIE_KEY_SESSION)
	if err == http.ErrNoCookie { return false, nil }
	if err != nil { return false, err }
	return ctx.SessionInterface.VerifySession(un, s.Value)
}

func GenerateLoginInfoModel(ctx *RouterContext, r *http.Request) (*templates.LoginInfoModel, error) {
	// NOTE: we don't set .IsOwner here - that needs the component at
	// hand and is up to each controller.
	anonymous := &templates.LoginInfoModel{
		LoggedIn: false,
		UserName: "",
		UserFullName: "",
		UserEmail: "",
		IsOwner: false,
		IsAdmin: false,
	}
	un, err := GetUsernameFromCookie(r)
	if err != nil {
		if err != http.ErrNoCookie { return nil, err }
		return anonymous, nil
	}
	s, err := r.Cookie(COOKIE_KEY_SESSION)
	if err != nil {
		if err != http.ErrNoCookie { return nil, err }
		return anonymous, nil
	}
	res, err := ctx.SessionInterface.VerifySession(un, s.Value)
	if err != nil { return nil, err }
	if !res { return anonymous, nil }
	u, err := ctx.DatabaseInterface.GetUserByName(un)
	if err != nil { return nil, err }
	return &templates.LoginInfoModel{
		LoggedIn: true,
		UserName: un,
		UserFullName: u.Title,
		UserEmail: u.Email,
		IsOwner: false,
		IsAdmin: u.Status == model.ADMIN,
	}, nil
}
