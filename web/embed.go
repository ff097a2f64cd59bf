// Package web embeds the static browser UI and serves it over HTTP.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed all:static
var staticFS embed.FS

// Handler serves the embedded pages. Pretty paths map onto their page files:
// / → index, /search → search, /chat → chat, /books/{id} → book (the page
// script reads the id from the location).
func Handler() http.Handler {
	subFS, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(subFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		switch {
		case path == "":
			path = "index.html"
		case path == "search":
			path = "search.html"
		case path == "chat":
			path = "chat.html"
		case strings.HasPrefix(path, "books/"):
			path = "book.html"
		}

		f, err := subFS.Open(path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		_ = f.Close()

		r.URL.Path = "/" + path
		fileServer.ServeHTTP(w, r)
	})
}
