package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/config"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/database"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/logger"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/router"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/scheduler"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/service"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/pkg/mailer"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Env)

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Log.Fatalf("migrate: %v", err)
	}

	// Keep mail a nil interface when SMTP is unconfigured so dispatch can
	// short-circuit without touching the user table.
	var mail mailer.Mailer
	if smtp := mailer.NewSMTPMailer(&cfg.SMTP); smtp != nil {
		mail = smtp
	} else {
		logger.Log.Info("mail: dispatch disabled, set SMTP_HOST to enable")
	}

	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	notifSvc := service.NewNotificationService(notifRepo, userRepo, mail)
	scheduleSvc := service.NewScheduleService(scheduleRepo, notifSvc)
	reviewSvc := service.NewReviewService(scheduleSvc, notifSvc, reviewRepo, cfg.Scheduler.ReviewDelay)

	driver := scheduler.NewDriver(scheduleSvc, reviewSvc, cfg.Scheduler.Interval)
	if err := driver.Start(); err != nil {
		logger.Log.Fatalf("scheduler: %v", err)
	}

	engine := router.Setup(cfg, db, scheduleSvc, notifSvc, driver)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Log.Infof("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down...")
	driver.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("server shutdown: %v", err)
	}
	logger.Log.Info("server stopped")
}
