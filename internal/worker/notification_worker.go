package worker

import (
	"context"

	"onelastevent/internal/mailer"
	"onelastevent/internal/queue"
	"onelastevent/internal/repository"
	"onelastevent/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// 訂閱通知隊列
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	queue  queue.NotificationQueue
	users  repository.UserRepository
	mailer mailer.Mailer
}

func NewNotificationWorker(q queue.NotificationQueue, users repository.UserRepository, m mailer.Mailer) NotificationWorker {
	return &NotificationWorkerImpl{
		queue:  q,
		users:  users,
		mailer: m,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeNotifications(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("notification_worker")
		for msg := range msgs {
			notification := msg.Data

			user, err := w.users.FindByID(ctx, notification.UserID)
			if err != nil {
				// 收件人不存在就不值得重試，直接結案
				log.Warn("recipient lookup failed, dropping notification",
					zap.String("notification_id", notification.ID.String()),
					zap.String("user_id", notification.UserID.String()),
					zap.Error(err))
				msg.Ack()
				continue
			}

			if err := w.mailer.Send(ctx, user.Email, notification); err != nil {
				log.Error("failed to send notification email",
					zap.String("notification_id", notification.ID.String()),
					zap.Error(err))
				msg.Nack(true)
				continue
			}

			msg.Ack()
		}
	}()
	return nil
}
