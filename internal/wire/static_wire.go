package wire

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/monnybrand/the-shots-system/internal/media"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

// wireStatic serves the prebuilt frontend and the uploaded videos
func wireStatic(r chi.Router, store *media.Store, config *utils.Config) {
	publicDir := config.App.PublicDir

	// Login page at the root
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(publicDir, "login.html"))
	})

	// Frontend assets
	fileServer := http.FileServer(http.Dir(publicDir))
	r.Handle("/assets/*", fileServer)

	// Uploaded portfolio videos, mounted where UploadResponse.VideoURL points
	uploadPrefix := "/" + filepath.ToSlash(store.Dir()) + "/"
	r.Handle(uploadPrefix+"*", http.StripPrefix(uploadPrefix, http.FileServer(http.Dir(store.Dir()))))
}
