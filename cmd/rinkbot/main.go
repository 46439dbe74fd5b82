package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fchl/rinkbot/internal/bot"
	"github.com/fchl/rinkbot/internal/config"
	"github.com/fchl/rinkbot/internal/matcher"
	"github.com/fchl/rinkbot/internal/models"
	"github.com/fchl/rinkbot/internal/repository/memory"
	"github.com/fchl/rinkbot/internal/roster"
	"github.com/fchl/rinkbot/internal/schedule"
	"github.com/fchl/rinkbot/internal/scheduler"
	"github.com/fchl/rinkbot/internal/service"
	"github.com/fchl/rinkbot/internal/stats"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	players, skaters, goalies, sched, err := loadData(cfg.Data)
	if err != nil {
		return err
	}
	slog.Info("Data loaded",
		"roster", len(players),
		"skaters", len(skaters),
		"goalies", len(goalies),
		"goalieTallies", len(sched.GoalieTallies))

	lookup := matcher.Build(players, skaters, goalies, cfg.Matcher.Cutoff)
	repo := memory.NewRepository(players, lookup, service.DefaultCurrentPoints())
	fantasyService := service.NewFantasyService(repo, skaters, goalies, sched, cfg.Matcher.Cutoff)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, fantasyService)
	if err != nil {
		return err
	}

	sch, err := scheduler.NewScheduler(fantasyService, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sch.Start(); err != nil {
		return err
	}
	defer func() {
		err := sch.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func loadData(cfg config.Data) (
	[]models.RosterPlayer,
	map[string]models.SkaterRecord,
	map[string]models.GoalieRecord,
	models.ScheduleStats,
	error,
) {
	var sched models.ScheduleStats

	players, err := loadFile(cfg.RosterCSV, roster.Load)
	if err != nil {
		return nil, nil, nil, sched, fmt.Errorf("loading roster: %w", err)
	}
	skaters, err := loadFile(cfg.SkatersCSV, stats.LoadSkaters)
	if err != nil {
		return nil, nil, nil, sched, fmt.Errorf("loading skaters: %w", err)
	}
	goalies, err := loadFile(cfg.GoaliesCSV, stats.LoadGoalies)
	if err != nil {
		return nil, nil, nil, sched, fmt.Errorf("loading goalies: %w", err)
	}
	games, err := loadFile(cfg.ScheduleCSV, schedule.Load)
	if err != nil {
		return nil, nil, nil, sched, fmt.Errorf("loading schedule: %w", err)
	}

	return players, skaters, goalies, schedule.Derive(games), nil
}

func loadFile[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return load(f)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
