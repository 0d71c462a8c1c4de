package adaptor

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/usecase"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

// memory cap for multipart parsing; larger bodies spill to temp files
const maxMultipartMemory = 32 << 20

type UploadHandler struct {
	service usecase.MediaService
	log     *zap.Logger
}

func NewUploadHandler(service usecase.MediaService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log.With(zap.String("handler", "upload")),
	}
}

// UploadVideo handles POST /api/upload: one MP4 file under field "video"
func (h *UploadHandler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart request", nil)
		return
	}

	files := r.MultipartForm.File["video"]
	if len(files) == 0 {
		utils.ResponseBadRequest(w, "Video file is required", nil)
		return
	}
	fh := files[0]

	result, err := h.service.UploadVideo(r.Context(), fh)
	if err != nil {
		if strings.Contains(err.Error(), "invalid upload") {
			h.log.Warn("Upload rejected", zap.Error(err), zap.String("filename", fh.Filename))
			utils.ResponseBadRequest(w, "Only MP4 videos allowed", nil)
			return
		}
		h.log.Error("Failed to upload video", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Video uploaded successfully", result)
}
