package reminder

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/assignwatch/assignwatch/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/reminder/mock.go -package=mocks
type reminderSender interface {
	Send(to, message, channel string) error
}

// Handler delivers consumed reminder messages through the configured
// channel. Delivery failures are logged and the message dead-letters; the
// scheduler will re-publish on a later tick once the re-notify window
// allows it.
type Handler struct {
	service reminderSender
}

func NewHandler(svc reminderSender) *Handler {
	return &Handler{
		service: svc,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.ReminderMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: Got reminder %s, due at %v", msg.NotificationID, msg.DueAt)

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			zlog.Logger.Printf("Handle Message: Sending reminder %s via %s", msg.NotificationID, msg.Channel)
			return h.service.Send(msg.To, msg.Body, msg.Channel)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Printf("Handle Message: Reminder %s failed, moving to DLQ: %v", msg.NotificationID, err)
		return
	}

	zlog.Logger.Info().Msgf("Handle Message: Reminder %s sent successfully", msg.NotificationID)
}
