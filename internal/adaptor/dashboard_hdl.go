package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/usecase"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Stats handles GET /api/dashboard-stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.log.Error("Failed to collect dashboard stats", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
