package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	// GetMyHistory handles GET /attendance?from=YYYY-MM-DD&to=YYYY-MM-DD
	GetMyHistory(w http.ResponseWriter, r *http.Request)
	// GetMySummary handles GET /attendance/summary?month=YYYY-MM
	GetMySummary(w http.ResponseWriter, r *http.Request)
	// GetMyCalendar handles GET /attendance/calendar?month=YYYY-MM
	GetMyCalendar(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, now func() time.Time) AttendanceHandler {
	if now == nil {
		now = time.Now
	}
	return &attendanceHandlerImpl{attendanceService: attendanceService, now: now}
}

func (h *attendanceHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := attendance.HistoryRequest{
		EmployeeID: currentEmployeeID(r),
		From:       query.Get("from"),
		To:         query.Get("to"),
	}

	records, err := h.attendanceService.History(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewAttendanceResponses(records))
}

func (h *attendanceHandlerImpl) GetMySummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := attendance.ParseMonth(r.URL.Query().Get("month"), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.attendanceService.MonthSummary(r.Context(), currentEmployeeID(r), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func (h *attendanceHandlerImpl) GetMyCalendar(w http.ResponseWriter, r *http.Request) {
	year, month, err := attendance.ParseMonth(r.URL.Query().Get("month"), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cells, err := h.attendanceService.Calendar(r.Context(), currentEmployeeID(r), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewCalendarResponse(year, month, cells))
}
