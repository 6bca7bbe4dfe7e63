package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/config"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-portal-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-portal-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hris-portal-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-portal-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-portal-go/internal/service/leave"
)

// repositories is one implementation set of the record store.
type repositories struct {
	tx            database.Transactor
	employees     employee.EmployeeRepository
	balances      leave.LeaveBalanceRepository
	leaveRequests leave.LeaveRequestRepository
	attendance    attendance.AttendanceRepository
	close         func()
}

func openStore(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}

		if cfg.Store.SeedDemo {
			seeded, err := postgresql.SeedDemo(ctx, db, fixtures.Demo(time.Now()))
			if err != nil {
				db.Close()
				return nil, err
			}
			if seeded {
				slog.Info("database seeded with demo data")
			}
		}

		return &repositories{
			tx:            postgresql.NewTransactor(db),
			employees:     postgresql.NewEmployeeRepository(db),
			balances:      postgresql.NewLeaveBalanceRepository(db),
			leaveRequests: postgresql.NewLeaveRequestRepository(db),
			attendance:    postgresql.NewAttendanceRepository(db),
			close:         db.Close,
		}, nil

	default:
		store := memory.NewStore()
		if cfg.Store.SeedDemo {
			store.Seed(fixtures.Demo(time.Now()))
		}
		return &repositories{
			tx:            store,
			employees:     memory.NewEmployeeRepository(store),
			balances:      memory.NewLeaveBalanceRepository(store),
			leaveRequests: memory.NewLeaveRequestRepository(store),
			attendance:    memory.NewAttendanceRepository(store),
			close:         store.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(cfg.App.Env, appHTTP.ParseLogLevel(cfg.App.LogLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open record store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	appMetrics := metrics.New()

	leaveSvc := leaveService.NewLeaveService(
		repos.tx,
		repos.leaveRequests,
		repos.balances,
		leaveService.WithMetrics(appMetrics),
	)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, time.Now)
	employeeSvc := employeeService.NewEmployeeService(repos.employees)
	dashboardSvc := dashboardService.NewDashboardService(leaveSvc, attendanceSvc, time.Now)

	scheduler := cron.NewScheduler()
	scheduler.AddJob(cron.Job{
		Name:     "leave_balance_audit",
		Interval: cfg.App.BalanceAuditInterval,
		Timeout:  time.Minute,
		Fn: func(ctx context.Context) error {
			_, err := leaveSvc.AuditBalances(ctx)
			return err
		},
	})
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:            logger,
		AllowedOrigins:    cfg.App.AllowedOrigins,
		DefaultEmployeeID: cfg.App.CurrentEmployeeID,
		Metrics:           appMetrics,
	}, appHTTP.Handlers{
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, time.Now),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", server.Addr, "store", cfg.Store.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
