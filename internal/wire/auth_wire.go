package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/monnybrand/the-shots-system/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// No sessions or tokens; the frontend keeps the login payload itself
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
}
