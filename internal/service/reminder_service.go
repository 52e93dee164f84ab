package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// MonthlyReminderID identifies the monthly reflection notification.
const MonthlyReminderID = "monthlyReflection"

// Notification is one reminder ready for delivery.
type Notification struct {
	ID    string
	Title string
	Body  string
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// ReminderSchedule is when the monthly reminder fires.
type ReminderSchedule struct {
	Day  int
	Time string
}

// ReminderService builds the monthly reflection reminder and keeps its cron
// job in line with the user's settings.
type ReminderService struct {
	regrets   *RegretService
	scheduler *SchedulerService
	notifier  Notifier
	schedule  ReminderSchedule
	log       *logrus.Logger

	mu      sync.Mutex
	entry   cron.EntryID
	enabled bool
}

func NewReminderService(regrets *RegretService, scheduler *SchedulerService, notifier Notifier, schedule ReminderSchedule, log *logrus.Logger) *ReminderService {
	return &ReminderService{
		regrets:   regrets,
		scheduler: scheduler,
		notifier:  notifier,
		schedule:  schedule,
		log:       log,
	}
}

// MonthlyReflection builds the reminder text for now.
func (s *ReminderService) MonthlyReflection(ctx context.Context, now time.Time) Notification {
	var body strings.Builder
	body.WriteString("Take a moment to reflect on your financial growth this month.")

	all := s.regrets.FetchAll(ctx)
	if len(all) > 0 {
		body.WriteString(fmt.Sprintf("\n%d reflections, %d%% transformed.", len(all), int(growthProgress(all)*100)))
	}
	if r := s.regrets.TodaysReflection(ctx, now); r != nil {
		body.WriteString(fmt.Sprintf("\nToday's reflection: %s", strings.TrimSpace(r.Title)))
	}

	return Notification{
		ID:    MonthlyReminderID,
		Title: "Monthly Reflection",
		Body:  body.String(),
	}
}

// Send builds and delivers the reminder now.
func (s *ReminderService) Send(ctx context.Context, now time.Time) error {
	n := s.MonthlyReflection(ctx, now)
	if err := s.notifier.Notify(ctx, n); err != nil {
		return fmt.Errorf("deliver reminder: %w", err)
	}
	return nil
}

// Sync registers the monthly job when enabled and removes it otherwise.
// Calling it repeatedly with the same value is a no-op.
func (s *ReminderService) Sync(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enabled == s.enabled {
		return nil
	}
	if !enabled {
		s.scheduler.Remove(s.entry)
		s.entry, s.enabled = 0, false
		return nil
	}

	id, err := s.scheduler.ScheduleMonthly(s.schedule.Day, s.schedule.Time, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Send(ctx, time.Now()); err != nil {
			logError(s.log, err, "monthly reminder", SeverityMedium)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule monthly reminder: %w", err)
	}
	s.entry, s.enabled = id, true
	return nil
}

// Next returns the next time the reminder fires, zero when it is disabled.
func (s *ReminderService) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return time.Time{}
	}
	return s.scheduler.Next(s.entry)
}
