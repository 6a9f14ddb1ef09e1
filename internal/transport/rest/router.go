package rest

import (
	"net/http"
	"path"
	"strings"

	"github.com/heartmarshall/dictionary-api/internal/transport/middleware"
)

// rootText is served on GET / as a liveness hint for humans.
const rootText = "Dictionary API is running"

// NewRouter registers every route on a ServeMux and wraps it in mw.
// Requests matching no route, including a known path with another
// method or a path ServeMux would redirect to its clean form, get the
// JSON 404.
func NewRouter(dict *DictionaryHandler, health *HealthHandler, resp *Responder, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(rootText))
	})

	mux.HandleFunc("GET /dictionary", dict.List)
	mux.HandleFunc("POST /dictionary", dict.Create)
	mux.HandleFunc("PUT /dictionary/{id}", dict.Update)
	mux.HandleFunc("DELETE /dictionary/{id}", dict.Delete)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("/", resp.NotFound)

	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != cleanPath(r.URL.Path) {
			resp.NotFound(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	}))
}

// cleanPath mirrors ServeMux canonicalisation: path.Clean, keeping a
// trailing slash.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	if strings.HasSuffix(p, "/") && np != "/" {
		np += "/"
	}
	return np
}
