package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"

	"github.com/assignwatch/assignwatch/internal/model"
	"github.com/assignwatch/assignwatch/internal/rabbitmq/queue"
)

var (
	ErrUnknownChannel  = errors.New("unknown notification channel")
	ErrInvalidLeadTime = errors.New("invalid lead time")
)

// leadTimeChoices are the lead-time windows the API accepts, in hours.
var leadTimeChoices = map[int]bool{6: true, 12: true, 24: true, 48: true, 72: true, 168: true}

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks
type watchRepository interface {
	AddClass(context.Context, model.Class) error
	ListClasses(context.Context) ([]model.Class, error)
	RemoveClass(context.Context, int) error
	SaveSnapshot(context.Context, int, []model.Assignment, time.Time) error
	GetSnapshot(context.Context, int) (model.ClassAssignments, error)
	ListSnapshots(context.Context) ([]model.ClassAssignments, error)
}

type stateStore interface {
	Settings(context.Context, retry.Strategy) (model.ReminderSettings, error)
	SetSettings(context.Context, retry.Strategy, model.ReminderSettings) error
	LastNotifiedAt(context.Context, retry.Strategy, int) (time.Time, bool, error)
	MarkNotified(context.Context, retry.Strategy, int, time.Time) error
	ClearNotified(context.Context, retry.Strategy, int) error
}

type reminderPublisher interface {
	Publish(queue.ReminderMessage, retry.Strategy) error
}

// Notifier delivers a rendered reminder to a recipient.
type Notifier interface {
	Send(to, msg string) error
}

// Service wires the watch registry, the notification state store, the
// dispatch queue and the delivery channels together.
type Service struct {
	repo      watchRepository
	store     stateStore
	queue     reminderPublisher
	notifiers map[string]Notifier
}

// NewService creates a reminder service.
func NewService(repo watchRepository, store stateStore, q reminderPublisher, notifiers map[string]Notifier) *Service {
	return &Service{repo: repo, store: store, queue: q, notifiers: notifiers}
}

// WatchClass registers a class so its assignments get polled and reminded.
func (s *Service) WatchClass(ctx context.Context, c model.Class) error {
	if err := s.repo.AddClass(ctx, c); err != nil {
		return fmt.Errorf("watch class: %w", err)
	}

	return nil
}

// ListClasses returns all watched classes.
func (s *Service) ListClasses(ctx context.Context) ([]model.Class, error) {
	classes, err := s.repo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	return classes, nil
}

// UnwatchClass removes a class from the watch registry.
func (s *Service) UnwatchClass(ctx context.Context, classID int) error {
	if err := s.repo.RemoveClass(ctx, classID); err != nil {
		return fmt.Errorf("unwatch class: %w", err)
	}

	return nil
}

// SaveSnapshot stores the latest fetched assignment list for a class.
func (s *Service) SaveSnapshot(ctx context.Context, classID int, assignments []model.Assignment, fetchedAt time.Time) error {
	if err := s.repo.SaveSnapshot(ctx, classID, assignments, fetchedAt); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

// Assignments returns the cached assignment list of one class.
func (s *Service) Assignments(ctx context.Context, classID int) (model.ClassAssignments, error) {
	snap, err := s.repo.GetSnapshot(ctx, classID)
	if err != nil {
		return model.ClassAssignments{}, fmt.Errorf("get snapshot: %w", err)
	}

	return snap, nil
}

// Snapshots returns the cached assignment lists of all watched classes.
func (s *Service) Snapshots(ctx context.Context) ([]model.ClassAssignments, error) {
	snapshots, err := s.repo.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	return snapshots, nil
}

// Settings returns the live reminder configuration.
func (s *Service) Settings(ctx context.Context, strategy retry.Strategy) (model.ReminderSettings, error) {
	settings, err := s.store.Settings(ctx, strategy)
	if err != nil {
		return model.ReminderSettings{}, fmt.Errorf("get settings: %w", err)
	}

	return settings, nil
}

// SetSettings updates the reminder configuration. The lead time must be one
// of the supported windows.
func (s *Service) SetSettings(ctx context.Context, strategy retry.Strategy, settings model.ReminderSettings) error {
	if !leadTimeChoices[settings.LeadTimeHours] {
		return fmt.Errorf("%w: %d hours", ErrInvalidLeadTime, settings.LeadTimeHours)
	}

	if err := s.store.SetSettings(ctx, strategy, settings); err != nil {
		return fmt.Errorf("set settings: %w", err)
	}

	return nil
}

// LastNotifiedAt returns when an assignment was last reminded, if ever.
func (s *Service) LastNotifiedAt(ctx context.Context, strategy retry.Strategy, assignmentID int) (time.Time, bool, error) {
	return s.store.LastNotifiedAt(ctx, strategy, assignmentID)
}

// MarkNotified records a sent reminder for an assignment.
func (s *Service) MarkNotified(ctx context.Context, strategy retry.Strategy, assignmentID int, at time.Time) error {
	return s.store.MarkNotified(ctx, strategy, assignmentID, at)
}

// ClearNotified drops the notification record of a resolved assignment.
func (s *Service) ClearNotified(ctx context.Context, strategy retry.Strategy, assignmentID int) error {
	return s.store.ClearNotified(ctx, strategy, assignmentID)
}

// PublishReminder hands a reminder to the dispatch queue.
func (s *Service) PublishReminder(msg queue.ReminderMessage, strategy retry.Strategy) error {
	if err := s.queue.Publish(msg, strategy); err != nil {
		return fmt.Errorf("publish reminder: %w", err)
	}

	return nil
}

// Send delivers a message through the named channel.
func (s *Service) Send(to, message, channel string) error {
	notifier, ok := s.notifiers[channel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	return notifier.Send(to, message)
}
