package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/pkg/database"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindAll(ctx context.Context) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (service_name, description, price, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		service.ServiceName,
		service.Description,
		service.Price,
		service.CreatedAt,
	).Scan(&service.ID)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("service_name", service.ServiceName),
		)
		return fmt.Errorf("create service %s: %w", service.ServiceName, err)
	}

	return nil
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, service_name, description, price, created_at
		FROM services
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("find all services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		err := rows.Scan(
			&service.ID,
			&service.ServiceName,
			&service.Description,
			&service.Price,
			&service.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}

// Update overwrites every field unconditionally. The affected row count
// is returned instead of an error so an unknown ID stays a no-op.
func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) (int64, error) {
	query := `
		UPDATE services
		SET service_name = $2, description = $3, price = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		service.ID,
		service.ServiceName,
		service.Description,
		service.Price,
	)

	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.Int64("service_id", service.ID),
		)
		return 0, fmt.Errorf("update service %d: %w", service.ID, err)
	}

	return result.RowsAffected(), nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM services WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.Int64("service_id", id),
		)
		return 0, fmt.Errorf("delete service %d: %w", id, err)
	}

	return result.RowsAffected(), nil
}
