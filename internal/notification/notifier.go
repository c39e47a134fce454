package notification

import (
	"context"
	"time"

	"onelastevent/internal/model"
	"onelastevent/internal/queue"
	"onelastevent/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier 對 service 層的通知出口。投遞是 best-effort：
// 核心流程不依賴通知成功，失敗只記 log。
type Notifier interface {
	RegistrationConfirmed(ctx context.Context, userID uuid.UUID, event *model.Event)
	PaymentReceived(ctx context.Context, userID uuid.UUID, event *model.Event)
	EventCancelled(ctx context.Context, userID uuid.UUID, event *model.Event)
}

type QueueNotifier struct {
	queue queue.NotificationQueue
}

func NewQueueNotifier(q queue.NotificationQueue) Notifier {
	return &QueueNotifier{queue: q}
}

func (n *QueueNotifier) RegistrationConfirmed(ctx context.Context, userID uuid.UUID, event *model.Event) {
	n.publish(ctx, model.NotificationRegistrationConfirmed, userID, event)
}

func (n *QueueNotifier) PaymentReceived(ctx context.Context, userID uuid.UUID, event *model.Event) {
	n.publish(ctx, model.NotificationPaymentReceived, userID, event)
}

func (n *QueueNotifier) EventCancelled(ctx context.Context, userID uuid.UUID, event *model.Event) {
	n.publish(ctx, model.NotificationEventCancelled, userID, event)
}

func (n *QueueNotifier) publish(ctx context.Context, kind model.NotificationKind, userID uuid.UUID, event *model.Event) {
	notification := &model.Notification{
		ID:         uuid.New(),
		Kind:       kind,
		UserID:     userID,
		EventID:    event.ID,
		EventTitle: event.Title,
		CreatedAt:  time.Now().UTC(),
	}

	if err := n.queue.PublishNotification(ctx, notification); err != nil {
		logger.WithComponent("notifier").Error("failed to publish notification",
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
	}
}
