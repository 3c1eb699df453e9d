// Package scheduler runs the periodic due-date reminder tick: it reads the
// cached assignment snapshots, classifies submission status, cleans up
// resolved assignments and publishes at most one reminder per assignment per
// re-notify window.
package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/assignwatch/assignwatch/internal/config"
	"github.com/assignwatch/assignwatch/internal/model"
	"github.com/assignwatch/assignwatch/internal/notify"
	"github.com/assignwatch/assignwatch/internal/rabbitmq/queue"
	"github.com/assignwatch/assignwatch/internal/status"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks
type reminderService interface {
	Settings(context.Context, retry.Strategy) (model.ReminderSettings, error)
	Snapshots(context.Context) ([]model.ClassAssignments, error)
	LastNotifiedAt(context.Context, retry.Strategy, int) (time.Time, bool, error)
	MarkNotified(context.Context, retry.Strategy, int, time.Time) error
	ClearNotified(context.Context, retry.Strategy, int) error
	PublishReminder(queue.ReminderMessage, retry.Strategy) error
}

// Scheduler drives reminder ticks. One tick runs at a time; a new tick only
// starts after the previous one returned.
type Scheduler struct {
	service          reminderService
	strategy         retry.Strategy
	tickInterval     time.Duration
	renotifyInterval time.Duration
	channel          string
	to               string
}

// New creates a scheduler from the reminder configuration.
func New(service reminderService, cfg *config.Config) *Scheduler {
	return &Scheduler{
		service:          service,
		strategy:         cfg.Retry,
		tickInterval:     cfg.Reminder.TickInterval,
		renotifyInterval: cfg.Reminder.RenotifyInterval,
		channel:          cfg.Reminder.Channel,
		to:               cfg.Reminder.To,
	}
}

// Run ticks at the configured interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	zlog.Logger.Info().Msgf("reminder scheduler started, tick every %s", s.tickInterval)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.RunTick(ctx, time.Now())
		}
	}
}

// RunTick processes every cached assignment once. It never returns an error:
// reminders are best effort, and any per-assignment failure is logged and
// degrades to "try again next tick". When reminders are disabled the tick is
// a complete no-op, leaving existing notification records frozen.
func (s *Scheduler) RunTick(ctx context.Context, now time.Time) {
	settings, err := s.service.Settings(ctx, s.strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to read reminder settings, skipping tick")
		return
	}

	if !settings.Enabled {
		return
	}

	snapshots, err := s.service.Snapshots(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to read assignment snapshots, skipping tick")
		return
	}

	leadTime := time.Duration(settings.LeadTimeHours) * time.Hour

	for _, snap := range snapshots {
		for _, a := range snap.Assignments {
			s.processAssignment(ctx, now, leadTime, a)
		}
	}
}

// processAssignment applies the per-assignment pipeline: cleanup, lead-time
// window, rate limit, publish, record. Order matters: cleanup runs before
// any eligibility check so the state store never keeps a record for a
// resolved assignment.
func (s *Scheduler) processAssignment(ctx context.Context, now time.Time, leadTime time.Duration, a model.Assignment) {
	if a.DueDate == nil {
		return
	}

	st := status.Classify(a)

	if status.IsResolved(st, a, now) {
		if err := s.service.ClearNotified(ctx, s.strategy, a.ID); err != nil {
			zlog.Logger.Error().Err(err).Int("assignment_id", a.ID).Msg("failed to clear notification record")
		}
		return
	}

	due := *a.DueDate

	if due.After(now.Add(leadTime)) {
		return
	}

	last, ok, err := s.service.LastNotifiedAt(ctx, s.strategy, a.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int("assignment_id", a.ID).Msg("failed to read notification record")
		return
	}

	if ok && now.Sub(last) < s.renotifyInterval {
		return
	}

	msg := queue.ReminderMessage{
		DispatchID:     uuid.New(),
		NotificationID: notify.NotificationID(a.Type, a.ClassID, a.ID),
		ClassID:        a.ClassID,
		AssignmentID:   a.ID,
		Type:           a.Type,
		Title:          a.Title,
		Body:           notify.Body(a.Title, now, due),
		DueAt:          due,
		Channel:        s.channel,
		To:             s.to,
	}

	if err := s.service.PublishReminder(msg, s.strategy); err != nil {
		// lastNotifiedAt stays untouched, so the assignment is eligible
		// again on the next tick.
		zlog.Logger.Error().Err(err).Int("assignment_id", a.ID).Msg("failed to publish reminder")
		return
	}

	if err := s.service.MarkNotified(ctx, s.strategy, a.ID, now); err != nil {
		zlog.Logger.Error().Err(err).Int("assignment_id", a.ID).Msg("failed to record notification time")
	}
}
