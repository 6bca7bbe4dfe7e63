package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
)

// currentEmployeeID returns the id resolved by middleware.CurrentEmployee.
func currentEmployeeID(r *http.Request) int64 {
	id, _ := middleware.EmployeeIDFromContext(r.Context())
	return id
}

// idParam parses the {id} URL parameter as a positive integer.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
