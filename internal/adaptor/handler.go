package adaptor

import (
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/usecase"
)

type Handler struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Booking   *BookingHandler
	Work      *WorkHandler
	Dashboard *DashboardHandler
	Upload    *UploadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Catalog:   NewCatalogHandler(service.Catalog, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Work:      NewWorkHandler(service.Work, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
		Upload:    NewUploadHandler(service.Media, log),
	}
}
