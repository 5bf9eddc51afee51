package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/PhysicsUofRAUI/project-manager/internal/config"
	"github.com/PhysicsUofRAUI/project-manager/internal/notify"
	"github.com/PhysicsUofRAUI/project-manager/internal/repository"
	"github.com/PhysicsUofRAUI/project-manager/internal/service"
	"github.com/PhysicsUofRAUI/project-manager/internal/web"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "configuration file (optional, env vars used otherwise)")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	store := repository.NewStore(db)

	recurrenceSvc := service.NewRecurrenceService(store, service.DefaultRules(), log)
	dashboardSvc := service.NewDashboardService(store)
	taskSvc := service.NewTaskService(store)
	reminderSvc := service.NewReminderService(dashboardSvc, cfg.TopTasks)

	// Startup reconcile runs off the serving path; a failed pass only logs,
	// the next scheduled run picks the day up again.
	go func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := recurrenceSvc.Reconcile(jobCtx, time.Now()); err != nil {
			log.Error("startup reconcile", "error", err)
		}
	}()

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.ReconcileAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := recurrenceSvc.Reconcile(jobCtx, time.Now()); err != nil {
			log.Error("daily reconcile", "error", err)
		}
	}); err != nil {
		log.Error("schedule reconcile", "error", err)
		os.Exit(1)
	}

	if cfg.Telegram.Token != "" {
		notifier, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, reminderSvc, log)
		if err != nil {
			log.Error("telegram notifier", "error", err)
			os.Exit(1)
		}
		if _, err := scheduler.ScheduleInterval(cfg.Telegram.ReportInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := notifier.SendDailyReport(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("daily report", "error", err)
			}
		}); err != nil {
			log.Error("schedule reports", "error", err)
			os.Exit(1)
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	webServer := web.NewServer(store, dashboardSvc, taskSvc, cfg.TopTasks, log)
	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           webServer.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	log.Info("shutdown complete")
}

func mustMakeLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "INFO", "":
		slogLevel = slog.LevelInfo
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel}))
}
