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

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// CreateService handles POST /api/services
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "All fields are required", validationErrors)
		return
	}

	service, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create service")
		return
	}

	utils.ResponseSuccess(w, "Service added successfully", service)
}

// UpdateService handles PUT /api/services/{id}
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid service ID", nil)
		return
	}

	var req request.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "All fields are required", validationErrors)
		return
	}

	if err := h.service.UpdateService(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "Service updated successfully", nil)
}

// DeleteService handles DELETE /api/services/{id}
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid service ID", nil)
		return
	}

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "Service deleted successfully", nil)
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
