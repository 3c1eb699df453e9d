package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/assignwatch/assignwatch/internal/config"
	mocks "github.com/assignwatch/assignwatch/internal/mocks/scheduler"
	"github.com/assignwatch/assignwatch/internal/model"
	"github.com/assignwatch/assignwatch/internal/rabbitmq/queue"
)

func setupScheduler(t *testing.T) (*Scheduler, *mocks.MockreminderService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockreminderService(ctrl)

	cfg := &config.Config{}
	cfg.Reminder.TickInterval = time.Minute
	cfg.Reminder.RenotifyInterval = 24 * time.Hour
	cfg.Reminder.Channel = "email"
	cfg.Reminder.To = "student@example.com"

	return New(mockService, cfg), mockService
}

func snapshotWith(assignments ...model.Assignment) []model.ClassAssignments {
	return []model.ClassAssignments{{ClassID: 7, Assignments: assignments}}
}

func enabledSettings() model.ReminderSettings {
	return model.ReminderSettings{Enabled: true, LeadTimeHours: 72}
}

func TestRunTick_DisabledIsNoOp(t *testing.T) {
	s, mockService := setupScheduler(t)

	// only the settings read is allowed: no snapshot read, no store
	// writes, no publishes
	mockService.EXPECT().
		Settings(gomock.Any(), gomock.Any()).
		Return(model.ReminderSettings{Enabled: false, LeadTimeHours: 72}, nil)

	s.RunTick(context.Background(), time.Now())
}

func TestRunTick_FiresWithinLeadTime(t *testing.T) {
	s, mockService := setupScheduler(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	due := now.Add(2 * time.Hour)
	a := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment, Title: "Homework 3", DueDate: &due}

	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(a), nil)
	mockService.EXPECT().LastNotifiedAt(gomock.Any(), gomock.Any(), 42).Return(time.Time{}, false, nil)

	var published queue.ReminderMessage
	mockService.EXPECT().
		PublishReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(msg queue.ReminderMessage, _ retry.Strategy) error {
			published = msg
			return nil
		})
	mockService.EXPECT().MarkNotified(gomock.Any(), gomock.Any(), 42, now).Return(nil)

	s.RunTick(context.Background(), now)

	assert.Equal(t, "assignwatch-ASM-7-42", published.NotificationID)
	assert.Equal(t, 42, published.AssignmentID)
	assert.Equal(t, "email", published.Channel)
	assert.Contains(t, published.Body, "in 2 hours")
}

func TestRunTick_ResolvedCleanupIsIdempotent(t *testing.T) {
	s, mockService := setupScheduler(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	due := now.Add(2 * time.Hour)
	a := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment, DueDate: &due, HasSubmission: true}

	// two consecutive ticks: cleanup runs both times, nothing fires
	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil).Times(2)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(a), nil).Times(2)
	mockService.EXPECT().ClearNotified(gomock.Any(), gomock.Any(), 42).Return(nil).Times(2)

	s.RunTick(context.Background(), now)
	s.RunTick(context.Background(), now.Add(time.Minute))
}

func TestRunTick_PastDueCleanedUpWithoutReminder(t *testing.T) {
	s, mockService := setupScheduler(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	a := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment, DueDate: &due}

	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(a), nil)
	mockService.EXPECT().ClearNotified(gomock.Any(), gomock.Any(), 42).Return(nil)

	s.RunTick(context.Background(), now)
}

func TestRunTick_RateLimitWindow(t *testing.T) {
	s, mockService := setupScheduler(t)

	t0 := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	due := t0.Add(30 * time.Hour)
	a := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment, Title: "Homework 3", DueDate: &due}

	// one hour after the last reminder: suppressed
	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(a), nil)
	mockService.EXPECT().LastNotifiedAt(gomock.Any(), gomock.Any(), 42).Return(t0, true, nil)

	s.RunTick(context.Background(), t0.Add(time.Hour))

	// twenty-five hours after: fires again
	now := t0.Add(25 * time.Hour)
	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(a), nil)
	mockService.EXPECT().LastNotifiedAt(gomock.Any(), gomock.Any(), 42).Return(t0, true, nil)
	mockService.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).Return(nil)
	mockService.EXPECT().MarkNotified(gomock.Any(), gomock.Any(), 42, now).Return(nil)

	s.RunTick(context.Background(), now)
}

func TestRunTick_LeadTimeBoundary(t *testing.T) {
	s, mockService := setupScheduler(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	leadTime := 72 * time.Hour

	// due one minute beyond the window: no reminder
	tooEarly := now.Add(leadTime + time.Minute)
	outside := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment, DueDate: &tooEarly}

	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(outside), nil)

	s.RunTick(context.Background(), now)

	// due one minute inside the window: fires
	justInside := now.Add(leadTime - time.Minute)
	inside := model.Assignment{ID: 43, ClassID: 7, Type: model.ActivityAssignment, DueDate: &justInside}

	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(inside), nil)
	mockService.EXPECT().LastNotifiedAt(gomock.Any(), gomock.Any(), 43).Return(time.Time{}, false, nil)
	mockService.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).Return(nil)
	mockService.EXPECT().MarkNotified(gomock.Any(), gomock.Any(), 43, now).Return(nil)

	s.RunTick(context.Background(), now)
}

func TestRunTick_PublishFailureLeavesRecordUntouched(t *testing.T) {
	s, mockService := setupScheduler(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	due := now.Add(2 * time.Hour)
	a := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment, DueDate: &due}

	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(a), nil)
	mockService.EXPECT().LastNotifiedAt(gomock.Any(), gomock.Any(), 42).Return(time.Time{}, false, nil)
	mockService.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	// MarkNotified must not be called

	s.RunTick(context.Background(), now)
}

func TestRunTick_FailureIsolatedPerAssignment(t *testing.T) {
	s, mockService := setupScheduler(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	due := now.Add(2 * time.Hour)
	broken := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment, DueDate: &due}
	healthy := model.Assignment{ID: 43, ClassID: 7, Type: model.ActivityQuiz, DueDate: &due}

	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(broken, healthy), nil)

	mockService.EXPECT().LastNotifiedAt(gomock.Any(), gomock.Any(), 42).Return(time.Time{}, false, errors.New("redis down"))

	mockService.EXPECT().LastNotifiedAt(gomock.Any(), gomock.Any(), 43).Return(time.Time{}, false, nil)
	mockService.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).Return(nil)
	mockService.EXPECT().MarkNotified(gomock.Any(), gomock.Any(), 43, now).Return(nil)

	s.RunTick(context.Background(), now)
}

func TestRunTick_NilDueDateSkipped(t *testing.T) {
	s, mockService := setupScheduler(t)

	a := model.Assignment{ID: 42, ClassID: 7, Type: model.ActivityAssignment}

	mockService.EXPECT().Settings(gomock.Any(), gomock.Any()).Return(enabledSettings(), nil)
	mockService.EXPECT().Snapshots(gomock.Any()).Return(snapshotWith(a), nil)

	s.RunTick(context.Background(), time.Now())
}
