package routes

import (
	"fmt"
	"log"
	"net/http"
)

// middleware...

type Middleware func(HandlerFunc)HandlerFunc;
type HandlerFunc func(*RouterContext, http.ResponseWriter, *http.Request);

func UseMiddleware(w []Middleware, ctx *RouterContext, f HandlerFunc) http.HandlerFunc {
	if len(w) <= 0 {
		return func(w http.ResponseWriter, r *http.Request) {
			f(ctx, w, r);
		}
	}
	var res HandlerFunc = w[len(w)-1](f)
	i := len(w)-2
	for i >= 0 { res = w[i](res); i -= 1; }
	return func(w http.ResponseWriter, r *http.Request) {
		res(ctx, w, r);
	}
}

var Logged Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		log.Printf(" %s %s\n", r.Method, r.URL.Path)
		f(ctx, w, r)
	}
}

var UseLoginInfo Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		ctx.LoginInfo, ctx.LastError = GenerateLoginInfoModel(ctx, r)
		f(ctx, w, r)
	}
}

var LoginRequired Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		ctx.LoginInfo, ctx.LastError = GenerateLoginInfoModel(ctx, r)
		if ctx.LastError != nil {
			ctx.ReportRedirect("/login", 0, "Login Check Failed", fmt.Sprintf("Failed while checking login status: %s.", ctx.LastError), w, r)
			return
		}
		if !ctx.LoginInfo.LoggedIn {
			ctx.ReportRedirect("/login", 0, "Login Required", "The action you requested requires you to log in. Please log in and try again.", w, r)
			return
		}
		f(ctx, w, r)
	}
}

var ErrorGuard Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		if ctx.LastError != nil {
			ctx.ReportInternalError(fmt.Sprintf("Internal error: %s\n", ctx.LastError), w, r)
			return
		}
		f(ctx, w, r)
	}
}

var RateLimit Middleware = func(f HandlerFunc) HandlerFunc {
	return func(ctx *RouterContext, w http.ResponseWriter, r *http.Request) {
		if ctx.RateLimiter.IsIPAllowed(ResolveMostPossibleIP(w, r)) {
			f(ctx, w, r)
		} else {
			w.WriteHeader(429)
		}
	}
}
