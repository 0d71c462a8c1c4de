package usecase

import (
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/media"
)

type Service struct {
	Auth      AuthService
	Catalog   CatalogService
	Booking   BookingService
	Work      WorkService
	Dashboard DashboardService
	Media     MediaService
}

func NewService(repo *repository.Repository, store *media.Store, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, log),
		Catalog:   NewCatalogService(repo.Service, log),
		Booking:   NewBookingService(repo.Booking, log),
		Work:      NewWorkService(repo.Work, log),
		Dashboard: NewDashboardService(repo.Stats, log),
		Media:     NewMediaService(store, log),
	}
}
