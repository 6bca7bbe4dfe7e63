package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

// EmployeeIDHeader selects the acting employee. Authentication is out of scope;
// the header only picks whose data a request reads and writes.
const EmployeeIDHeader = "X-Employee-ID"

// CurrentEmployee resolves the acting employee from EmployeeIDHeader, falling
// back to defaultID when the header is absent.
func CurrentEmployee(defaultID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			employeeID := defaultID

			if raw := strings.TrimSpace(r.Header.Get(EmployeeIDHeader)); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					response.BadRequest(w, "Invalid employee id header", map[string]string{
						EmployeeIDHeader: "must be a positive integer",
					})
					return
				}
				employeeID = id
			}

			next.ServeHTTP(w, r.WithContext(employee.WithActor(r.Context(), employeeID)))
		})
	}
}

// EmployeeIDFromContext returns the id set by CurrentEmployee.
func EmployeeIDFromContext(ctx context.Context) (int64, bool) {
	return employee.ActorFromContext(ctx)
}
