package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/monnybrand/the-shots-system/internal/adaptor"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	r.Get("/api/dashboard-stats", dashboardHandler.Stats)
}
