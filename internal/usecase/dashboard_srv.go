package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/dto/response"
)

type DashboardService interface {
	Stats(ctx context.Context) (*response.DashboardStatsResponse, error)
}

type dashboardService struct {
	stats repository.StatsRepository
	log   *zap.Logger
}

func NewDashboardService(stats repository.StatsRepository, log *zap.Logger) DashboardService {
	return &dashboardService{
		stats: stats,
		log:   log.With(zap.String("service", "dashboard")),
	}
}

// Stats gathers six independent counts. They have no ordering dependency,
// so they run concurrently and the response is assembled once all six
// have completed.
func (s *dashboardService) Stats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	var out response.DashboardStatsResponse

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.stats.CountUsers(ctx)
		out.TotalUsers = count
		return err
	})
	g.Go(func() error {
		count, err := s.stats.CountServices(ctx)
		out.TotalServices = count
		return err
	})
	g.Go(func() error {
		count, err := s.stats.CountBookings(ctx)
		out.TotalBookings = count
		return err
	})
	g.Go(func() error {
		count, err := s.stats.CountBookingsByStatus(ctx, entity.BookingStatusApproved)
		out.ApprovedBookings = count
		return err
	})
	g.Go(func() error {
		count, err := s.stats.CountBookingsByStatus(ctx, entity.BookingStatusPending)
		out.PendingBookings = count
		return err
	})
	g.Go(func() error {
		count, err := s.stats.CountBookingsByStatus(ctx, entity.BookingStatusRejected)
		out.RejectedBookings = count
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to collect dashboard stats", zap.Error(err))
		return nil, fmt.Errorf("collect dashboard stats: %w", err)
	}

	return &out, nil
}
