package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/fchl/rinkbot/internal/service"
)

type Scheduler struct {
	s              gocron.Scheduler
	fantasyService *service.FantasyService
	sendMessage    func(string) error
}

func NewScheduler(fantasyService *service.FantasyService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Regina") // league time, no DST
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		fantasyService: fantasyService,
		sendMessage:    sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Projected standings - every morning 8:00
	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	// Unmatched-player advisory - Monday 8:05
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(8, 5, 0))),
		gocron.NewTask(s.sendUnmatched),
	)
	if err != nil {
		return fmt.Errorf("failed to create unmatched job: %w", err)
	}

	// Remaining-games reference - Monday 8:10
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(8, 10, 0))),
		gocron.NewTask(s.sendRemainingGames),
	)
	if err != nil {
		return fmt.Errorf("failed to create remaining games job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendStandings() {
	if err := s.sendMessage(s.fantasyService.GetStandings()); err != nil {
		slog.Error("Failed to send standings", "error", err)
	}
}

func (s *Scheduler) sendUnmatched() {
	if err := s.sendMessage(s.fantasyService.GetUnmatched()); err != nil {
		slog.Error("Failed to send unmatched report", "error", err)
	}
}

func (s *Scheduler) sendRemainingGames() {
	if err := s.sendMessage(s.fantasyService.GetRemainingGames()); err != nil {
		slog.Error("Failed to send remaining games", "error", err)
	}
}
