package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/monnybrand/the-shots-system/internal/adaptor"
)

func wireWork(r chi.Router, workHandler *adaptor.WorkHandler, uploadHandler *adaptor.UploadHandler) {
	r.Route("/api/works", func(r chi.Router) {
		r.Get("/", workHandler.ListWorks)
		r.Post("/", workHandler.CreateWork)
		r.Delete("/{id}", workHandler.DeleteWork)
	})

	// Upload is a separate step from the metadata row; the frontend
	// chains the returned video_url into POST /api/works.
	r.Post("/api/upload", uploadHandler.UploadVideo)
}
