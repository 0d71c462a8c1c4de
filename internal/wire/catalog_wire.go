package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/monnybrand/the-shots-system/internal/adaptor"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Route("/api/services", func(r chi.Router) {
		r.Get("/", catalogHandler.ListServices)
		r.Post("/", catalogHandler.CreateService)
		r.Put("/{id}", catalogHandler.UpdateService)
		r.Delete("/{id}", catalogHandler.DeleteService)
	})
}
