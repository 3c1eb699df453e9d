package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/assignwatch/assignwatch/internal/mocks/worker"
	"github.com/assignwatch/assignwatch/internal/model"
	"github.com/assignwatch/assignwatch/internal/rabbitmq/queue"
)

func TestDispatcher_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMockreminderQueue(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockreminderService(ctrl)

	d := NewDispatcher(mockQueue, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	msg := queue.ReminderMessage{
		DispatchID:     uuid.New(),
		NotificationID: "assignwatch-ASM-7-42",
		ClassID:        7,
		AssignmentID:   42,
		Type:           "ASM",
		Title:          "Lab 3",
		Body:           `"Lab 3" is due in 2 hours`,
		Channel:        "email",
		To:             "student@example.com",
	}

	mockQueue.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.ReminderMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().Settings(gomock.Any(), strategy).
		Return(model.ReminderSettings{Enabled: true, LeadTimeHours: 72}, nil)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg, strategy)

	go d.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestDispatcher_Run_DisabledSkipsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMockreminderQueue(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockreminderService(ctrl)

	d := NewDispatcher(mockQueue, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.ReminderMessage{DispatchID: uuid.New(), NotificationID: "assignwatch-QUZ-3-9"}

	mockQueue.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.ReminderMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	// Reminders got disabled after the message was queued; the handler must
	// never see it.
	mockService.EXPECT().Settings(gomock.Any(), strategy).
		Return(model.ReminderSettings{Enabled: false, LeadTimeHours: 72}, nil)

	go d.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestDispatcher_Run_SettingsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMockreminderQueue(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockreminderService(ctrl)

	d := NewDispatcher(mockQueue, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.ReminderMessage{DispatchID: uuid.New(), NotificationID: "assignwatch-ASM-1-2"}

	mockQueue.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.ReminderMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().Settings(gomock.Any(), strategy).
		Return(model.ReminderSettings{}, errors.New("redis down"))

	go d.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestDispatcher_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMockreminderQueue(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockreminderService(ctrl)

	d := NewDispatcher(mockQueue, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockQueue.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, out chan<- queue.ReminderMessage, _ retry.Strategy) error {
			<-ctx.Done()
			return nil
		},
	)

	go d.Run(ctx, strategy, 1)

	cancel()

	require.Eventually(t, func() bool { return true }, time.Second, 50*time.Millisecond)
	assert.True(t, true, "dispatcher stopped cleanly")
}
