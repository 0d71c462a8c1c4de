package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/pkg/database"
)

type WorkRepository interface {
	Create(ctx context.Context, work *entity.Work) error
	FindAll(ctx context.Context) ([]*entity.Work, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type workRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWorkRepository(db database.PgxIface, log *zap.Logger) WorkRepository {
	return &workRepository{
		db:  db,
		log: log.With(zap.String("repository", "work")),
	}
}

func (r *workRepository) Create(ctx context.Context, work *entity.Work) error {
	query := `
		INSERT INTO works (title, category, video_url, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		work.Title,
		work.Category,
		work.VideoURL,
		work.Description,
		work.CreatedAt,
	).Scan(&work.ID)

	if err != nil {
		r.log.Error("Failed to create work",
			zap.Error(err),
			zap.String("title", work.Title),
		)
		return fmt.Errorf("create work %s: %w", work.Title, err)
	}

	return nil
}

func (r *workRepository) FindAll(ctx context.Context) ([]*entity.Work, error) {
	query := `
		SELECT id, title, category, video_url, description, created_at
		FROM works
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list works", zap.Error(err))
		return nil, fmt.Errorf("find all works: %w", err)
	}
	defer rows.Close()

	var works []*entity.Work
	for rows.Next() {
		var work entity.Work
		err := rows.Scan(
			&work.ID,
			&work.Title,
			&work.Category,
			&work.VideoURL,
			&work.Description,
			&work.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan work row", zap.Error(err))
			return nil, fmt.Errorf("scan work row: %w", err)
		}
		works = append(works, &work)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate work rows: %w", err)
	}

	return works, nil
}

func (r *workRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM works WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete work",
			zap.Error(err),
			zap.Int64("work_id", id),
		)
		return 0, fmt.Errorf("delete work %d: %w", id, err)
	}

	return result.RowsAffected(), nil
}
