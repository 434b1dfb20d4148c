package controller

import (
	"net/http"

	. "github.com/telsin/filegrid/routes"
)

func bindStaticController(ctx *RouterContext) {
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(ctx.Config.StaticAssetDirectory)))
	http.HandleFunc("GET /static/{p...}", WithLogHandler(fs))
}
