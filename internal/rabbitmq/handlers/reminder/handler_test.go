package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/assignwatch/assignwatch/internal/mocks/rabbitmq/handlers/reminder"
	"github.com/assignwatch/assignwatch/internal/rabbitmq/queue"
)

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockreminderSender(ctrl)
	h := NewHandler(mockService)

	msg := queue.ReminderMessage{
		DispatchID:     uuid.New(),
		NotificationID: "assignwatch-ASM-7-42",
		Body:           `"Lab 3" is due in 2 hours`,
		Channel:        "email",
		To:             "student@example.com",
		DueAt:          time.Now().Add(2 * time.Hour),
	}

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Send(msg.To, msg.Body, msg.Channel).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_SendFailsAfterRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockreminderSender(ctrl)
	h := NewHandler(mockService)

	msg := queue.ReminderMessage{
		DispatchID:     uuid.New(),
		NotificationID: "assignwatch-QUZ-3-9",
		Body:           `"Quiz 1" is due tomorrow`,
		Channel:        "email",
		To:             "student@example.com",
	}

	strategy := retry.Strategy{Attempts: 2, Delay: time.Millisecond}
	sendErr := errors.New("smtp unavailable")

	// Every attempt fails; the message dead-letters and the scheduler will
	// re-publish on a later tick.
	mockService.EXPECT().
		Send(msg.To, msg.Body, msg.Channel).
		Return(sendErr).
		Times(2)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockreminderSender(ctrl)
	h := NewHandler(mockService)

	msg := queue.ReminderMessage{
		DispatchID:     uuid.New(),
		NotificationID: "assignwatch-ASM-1-2",
		Channel:        "email",
		To:             "student@example.com",
	}

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Send is never called on a canceled context.
	h.HandleMessage(ctx, msg, strategy)
}
