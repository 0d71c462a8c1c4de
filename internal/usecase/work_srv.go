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

type WorkService interface {
	ListWorks(ctx context.Context) ([]*response.WorkResponse, error)
	CreateWork(ctx context.Context, req *request.CreateWorkRequest) (*response.WorkResponse, error)
	DeleteWork(ctx context.Context, id int64) error
}

type workService struct {
	works repository.WorkRepository
	log   *zap.Logger
}

func NewWorkService(works repository.WorkRepository, log *zap.Logger) WorkService {
	return &workService{
		works: works,
		log:   log.With(zap.String("service", "work")),
	}
}

func (s *workService) ListWorks(ctx context.Context) ([]*response.WorkResponse, error) {
	works, err := s.works.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}

	return response.WorksToResponse(works), nil
}

// CreateWork records portfolio metadata. The video file itself goes
// through the upload endpoint; the two are not linked transactionally.
func (s *workService) CreateWork(ctx context.Context, req *request.CreateWorkRequest) (*response.WorkResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create work validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	work := &entity.Work{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		Title:       req.Title,
		Category:    req.Category,
		VideoURL:    req.VideoURL,
		Description: req.Description,
	}

	if err := s.works.Create(ctx, work); err != nil {
		return nil, fmt.Errorf("create work: %w", err)
	}

	s.log.Info("Work created",
		zap.Int64("work_id", work.ID),
		zap.String("title", work.Title))

	return response.WorkToResponse(work), nil
}

func (s *workService) DeleteWork(ctx context.Context, id int64) error {
	affected, err := s.works.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete work: %w", err)
	}

	if affected == 0 {
		s.log.Warn("Delete matched no work", zap.Int64("work_id", id))
	}

	return nil
}
