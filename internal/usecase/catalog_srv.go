package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/dto/request"
	"github.com/monnybrand/the-shots-system/internal/dto/response"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]*response.ServiceResponse, error)
	CreateService(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, id int64, req *request.ServiceRequest) error
	DeleteService(ctx context.Context, id int64) error
}

type catalogService struct {
	services repository.ServiceRepository
	log      *zap.Logger
}

func NewCatalogService(services repository.ServiceRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		services: services,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]*response.ServiceResponse, error) {
	services, err := s.services.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	return response.ServicesToResponse(services), nil
}

func (s *catalogService) CreateService(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	service := &entity.Service{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		ServiceName: req.ServiceName,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.Int64("service_id", service.ID),
		zap.String("service_name", service.ServiceName))

	return response.ServiceToResponse(service), nil
}

// UpdateService overwrites all fields; an unknown ID updates zero rows
// and still succeeds.
func (s *catalogService) UpdateService(ctx context.Context, id int64, req *request.ServiceRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	service := &entity.Service{
		Base:        entity.Base{ID: id},
		ServiceName: req.ServiceName,
		Description: req.Description,
		Price:       req.Price,
	}

	affected, err := s.services.Update(ctx, service)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}

	if affected == 0 {
		s.log.Warn("Update matched no service", zap.Int64("service_id", id))
	}

	return nil
}

// DeleteService is a no-op for unknown IDs, matching UpdateService
func (s *catalogService) DeleteService(ctx context.Context, id int64) error {
	affected, err := s.services.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	if affected == 0 {
		s.log.Warn("Delete matched no service", zap.Int64("service_id", id))
	}

	return nil
}
