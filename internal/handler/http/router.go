package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewLogger builds the JSON logger in the ECS schema used for request logs.
func NewLogger(env string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}

// ParseLogLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

type RouterOptions struct {
	Logger            *slog.Logger
	AllowedOrigins    []string
	DefaultEmployeeID int64
	Metrics           *metrics.Metrics
}

type Handlers struct {
	Dashboard  DashboardHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Attendance AttendanceHandler
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.EmployeeIDHeader, middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}
	r.Use(middleware.RequestID)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CurrentEmployee(opts.DefaultEmployeeID))

		r.Get("/dashboard", h.Dashboard.GetDashboard)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/me", h.Employee.GetMe)
			r.Patch("/me", h.Employee.UpdateMe)
			r.Get("/{id}", h.Employee.Get)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/balance", h.Leave.GetMyBalance)

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.Leave.GetMyRequests)
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/all", h.Leave.ListRequests)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Leave.GetRequest)
					r.Delete("/", h.Leave.CancelRequest)
					r.Post("/approve", h.Leave.ApproveRequest)
					r.Post("/reject", h.Leave.RejectRequest)
				})
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.GetMyHistory)
			r.Get("/summary", h.Attendance.GetMySummary)
			r.Get("/calendar", h.Attendance.GetMyCalendar)
		})
	})
	return r
}
