package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/dto/request"
	"github.com/monnybrand/the-shots-system/internal/usecase"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

type WorkHandler struct {
	service usecase.WorkService
	log     *zap.Logger
}

func NewWorkHandler(service usecase.WorkService, log *zap.Logger) *WorkHandler {
	return &WorkHandler{
		service: service,
		log:     log.With(zap.String("handler", "work")),
	}
}

// ListWorks handles GET /api/works
func (h *WorkHandler) ListWorks(w http.ResponseWriter, r *http.Request) {
	works, err := h.service.ListWorks(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list works")
		return
	}

	utils.ResponseSuccess(w, "success", works)
}

// CreateWork handles POST /api/works
func (h *WorkHandler) CreateWork(w http.ResponseWriter, r *http.Request) {
	var req request.CreateWorkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Required fields missing", validationErrors)
		return
	}

	work, err := h.service.CreateWork(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create work")
		return
	}

	utils.ResponseSuccess(w, "Work added successfully", work)
}

// DeleteWork handles DELETE /api/works/{id}
func (h *WorkHandler) DeleteWork(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid work ID", nil)
		return
	}

	if err := h.service.DeleteWork(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete work")
		return
	}

	utils.ResponseSuccess(w, "Work deleted", nil)
}

func (h *WorkHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
