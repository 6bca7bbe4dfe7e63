package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the current employee's balance, recent activity and month summary
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	employeeID := currentEmployeeID(r)

	result, err := h.dashboardService.GetDashboard(r.Context(), employeeID)
	if err != nil {
		slog.Error("dashboard load failed", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	// Per-employee data; X-Employee-ID selects the employee.
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Add("Vary", middleware.EmployeeIDHeader)
	response.Success(w, result)
}
