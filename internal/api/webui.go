package api

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed webui
var uiFS embed.FS

// UIHandler serves the embedded search page. The page is a single document,
// so it is never cached.
func UIHandler() http.Handler {
	subFS, err := fs.Sub(uiFS, "webui")
	var fileServer http.Handler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "UI not available", http.StatusInternalServerError)
	})
	if err == nil {
		fileServer = http.FileServer(http.FS(subFS))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fileServer.ServeHTTP(w, r)
	})
}
