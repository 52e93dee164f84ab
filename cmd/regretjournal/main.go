package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"regret-journal/internal/cli"
	"regret-journal/internal/config"
	"regret-journal/internal/logging"
	"regret-journal/internal/repository"
	"regret-journal/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.Database.Path, log)
	if err != nil {
		// Keep the journal usable for this session rather than refusing to start.
		log.WithError(err).WithField("path", cfg.Database.Path).Error("open journal, falling back to an in-memory store")
		db, err = repository.NewDB(repository.MemoryDSN, log)
		if err != nil {
			log.WithError(err).Fatal("open in-memory store")
		}
	}
	store := repository.NewStore(db)
	defer store.Close()

	settings, err := config.LoadSettings(cfg.Settings.Path)
	if err != nil {
		log.WithError(err).Warn("settings unreadable, using defaults")
	}

	categorySvc := service.NewCategoryService(store, log)
	regretSvc := service.NewRegretService(store, log)
	insightsSvc := service.NewInsightsService(regretSvc, categorySvc, time.Local)
	scheduler := service.NewSchedulerService(time.Local, log)

	app := cli.New(cli.Services{
		Categories: categorySvc,
		Regrets:    regretSvc,
		Insights:   insightsSvc,
		Scheduler:  scheduler,
		Reminder:   service.ReminderSchedule{Day: cfg.Reminder.Day, Time: cfg.Reminder.Time},
	}, cfg.Settings.Path, settings, log)

	if err := app.Execute(ctx, os.Args[1:]); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
