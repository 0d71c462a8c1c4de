package request

type CreateWorkRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	VideoURL    string `json:"video_url" validate:"required"`
	Description string `json:"description"`
}
