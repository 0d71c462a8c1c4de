package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/adaptor"
	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/media"
	"github.com/monnybrand/the-shots-system/internal/usecase"
	"github.com/monnybrand/the-shots-system/pkg/middleware"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes services and handlers and hangs them on the router
func Wiring(repo *repository.Repository, store *media.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, store, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, store, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	store *media.Store,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking)
	wireWork(r, handler.Work, handler.Upload)
	wireDashboard(r, handler.Dashboard)
	wireStatic(r, store, config)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
