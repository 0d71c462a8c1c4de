package response

import (
	"time"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
)

type WorkResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	VideoURL    string    `json:"video_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func WorkToResponse(work *entity.Work) *WorkResponse {
	return &WorkResponse{
		ID:          work.ID,
		Title:       work.Title,
		Category:    work.Category,
		VideoURL:    work.VideoURL,
		Description: work.Description,
		CreatedAt:   work.CreatedAt,
	}
}

func WorksToResponse(works []*entity.Work) []*WorkResponse {
	out := make([]*WorkResponse, 0, len(works))
	for _, work := range works {
		out = append(out, WorkToResponse(work))
	}
	return out
}

// UploadResponse reports where the uploaded video landed; video_url is
// what the frontend passes on to POST /api/works.
type UploadResponse struct {
	FileName string `json:"file_name"`
	VideoURL string `json:"video_url"`
}
